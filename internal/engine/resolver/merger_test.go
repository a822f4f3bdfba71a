package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stanza/internal/adapters/framework"
	"go.trai.ch/stanza/internal/core/domain"
	"go.trai.ch/stanza/internal/engine/resolver"
)

func parseFramework(t *testing.T, moniker string) domain.Framework {
	t.Helper()
	fw, err := domain.ParseFramework(moniker)
	require.NoError(t, err)
	return fw
}

func parseRange(t *testing.T, s string) domain.VersionRange {
	t.Helper()
	r, err := domain.ParseVersionRange(s)
	require.NoError(t, err)
	return r
}

func TestMergeInstalled_DedupesAcrossFrameworks(t *testing.T) {
	m := resolver.NewMerger(framework.NewComparer())

	net8 := parseFramework(t, "net8.0")
	netstandard := parseFramework(t, "netstandard2.0")

	decls := []domain.DependencyDeclaration{
		{ID: "PackageA", Range: parseRange(t, "1.0.0"), Framework: netstandard},
		{ID: "packagea", Range: parseRange(t, "2.0.0"), Framework: net8},
		{ID: "PackageB", Range: parseRange(t, "3.0.0"), Framework: netstandard},
	}

	installed := m.MergeInstalled(decls)

	require.Len(t, installed, 2)
	// The net family representative wins the cross-framework tie-break.
	assert.Equal(t, "packagea", installed[0].ID)
	assert.Equal(t, "2.0.0", installed[0].Version)
	assert.Equal(t, "PackageB", installed[1].ID)
}

func TestMergeInstalled_FirstWinsOnEqualFramework(t *testing.T) {
	m := resolver.NewMerger(framework.NewComparer())
	net8 := parseFramework(t, "net8.0")

	decls := []domain.DependencyDeclaration{
		{ID: "PackageA", Range: parseRange(t, "1.0.0"), Framework: net8},
		{ID: "PackageA", Range: parseRange(t, "2.0.0"), Framework: net8},
	}

	installed := m.MergeInstalled(decls)
	require.Len(t, installed, 1)
	assert.Equal(t, "1.0.0", installed[0].Version)
}

func TestMergeInstalled_EmptyRangeDisplaysAsAny(t *testing.T) {
	m := resolver.NewMerger(framework.NewComparer())

	installed := m.MergeInstalled([]domain.DependencyDeclaration{
		{ID: "PackageA", Framework: parseFramework(t, "net8.0")},
	})

	require.Len(t, installed, 1)
	assert.Empty(t, installed[0].Version)
	assert.Equal(t, "PackageA@any", installed[0].String())
}

func TestMergeInstalled_SortedByCanonicalID(t *testing.T) {
	m := resolver.NewMerger(framework.NewComparer())
	net8 := parseFramework(t, "net8.0")

	installed := m.MergeInstalled([]domain.DependencyDeclaration{
		{ID: "zeta", Framework: net8},
		{ID: "Alpha", Framework: net8},
		{ID: "beta", Framework: net8},
	})

	ids := []string{installed[0].ID, installed[1].ID, installed[2].ID}
	assert.Equal(t, []string{"Alpha", "beta", "zeta"}, ids)
}

func TestMergeTransitive_ExcludesInstalled(t *testing.T) {
	m := resolver.NewMerger(framework.NewComparer())

	snapshot := &domain.LockSnapshot{
		Version: 1,
		Targets: []domain.LockTarget{
			{
				Framework: "net8.0",
				Edges: []domain.LockEdge{
					{ID: "PackageA", Version: "1.0.0", Type: domain.EdgeTypeDirect},
					{ID: "TransitiveB", Version: "2.0.0", Type: domain.EdgeTypeTransitive},
					{ID: "PACKAGEA", Version: "1.0.0", Type: domain.EdgeTypeTransitive},
				},
			},
		},
	}

	installed := []domain.PackageIdentity{{ID: "packagea", Version: "1.0.0"}}
	transitive := m.MergeTransitive(m.IndexTransitive(snapshot), installed)

	require.Len(t, transitive, 1)
	assert.Equal(t, "TransitiveB", transitive[0].ID)
	assert.Equal(t, "2.0.0", transitive[0].Version)
}

func TestMergeTransitive_TieBreakAcrossTargets(t *testing.T) {
	m := resolver.NewMerger(framework.NewComparer())

	snapshot := &domain.LockSnapshot{
		Targets: []domain.LockTarget{
			{
				Framework: "netstandard2.0",
				Edges: []domain.LockEdge{
					{ID: "Shared", Version: "1.0.0", Type: domain.EdgeTypeTransitive},
				},
			},
			{
				Framework: "net8.0",
				Edges: []domain.LockEdge{
					{ID: "shared", Version: "1.5.0", Type: domain.EdgeTypeTransitive},
				},
			},
		},
	}

	transitive := m.MergeTransitive(m.IndexTransitive(snapshot), nil)

	require.Len(t, transitive, 1)
	assert.Equal(t, "1.5.0", transitive[0].Version)
}

func TestIndexTransitive_UnknownMonikerFoldsToAny(t *testing.T) {
	m := resolver.NewMerger(framework.NewComparer())

	snapshot := &domain.LockSnapshot{
		Targets: []domain.LockTarget{
			{
				Framework: "sparkly9.9",
				Edges: []domain.LockEdge{
					{ID: "Kept", Version: "1.0.0", Type: domain.EdgeTypeTransitive},
				},
			},
		},
	}

	transitive := m.MergeTransitive(m.IndexTransitive(snapshot), nil)
	require.Len(t, transitive, 1)
	assert.Equal(t, "Kept", transitive[0].ID)
}

func TestIndexTransitive_NilSnapshot(t *testing.T) {
	m := resolver.NewMerger(framework.NewComparer())
	assert.Nil(t, m.MergeTransitive(m.IndexTransitive(nil), nil))
}
