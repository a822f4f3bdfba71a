package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stanza/internal/adapters/framework"
	"go.trai.ch/stanza/internal/core/domain"
	"go.trai.ch/stanza/internal/engine/resolver"
)

func TestFallbackResolver_AssetListWins(t *testing.T) {
	r := resolver.NewFallbackResolver(framework.NewCompatResolver())
	primary := parseFramework(t, "net8.0")

	chain, err := r.Resolve(primary,
		[]string{"netstandard2.0"},
		[]string{"net6.0", "netstandard2.1"},
	)

	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, "net6.0", chain[0].String())
	assert.Equal(t, "netstandard2.1", chain[1].String())
}

func TestFallbackResolver_PackageListWhenAssetEmpty(t *testing.T) {
	r := resolver.NewFallbackResolver(framework.NewCompatResolver())
	primary := parseFramework(t, "net8.0")

	chain, err := r.Resolve(primary, []string{"netstandard2.0"}, nil)

	require.NoError(t, err)
	require.Len(t, chain, 1)
	assert.Equal(t, "netstandard2.0", chain[0].String())
}

func TestFallbackResolver_BothEmpty(t *testing.T) {
	r := resolver.NewFallbackResolver(framework.NewCompatResolver())

	chain, err := r.Resolve(parseFramework(t, "net8.0"), nil, nil)

	require.NoError(t, err)
	assert.Nil(t, chain)
}

func TestFallbackResolver_DedupesAndExcludesPrimary(t *testing.T) {
	r := resolver.NewFallbackResolver(framework.NewCompatResolver())
	primary := parseFramework(t, "net8.0")

	chain, err := r.Resolve(primary, nil,
		[]string{"net6.0", "NET6.0", "net8.0", "netstandard2.0"})

	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, "net6.0", chain[0].String())
	assert.Equal(t, "netstandard2.0", chain[1].String())
}

func TestFallbackResolver_MalformedMonikerFailsFast(t *testing.T) {
	r := resolver.NewFallbackResolver(framework.NewCompatResolver())

	_, err := r.Resolve(parseFramework(t, "net8.0"), []string{"bogus!"}, nil)
	require.ErrorIs(t, err, domain.ErrMalformedFramework)

	_, err = r.Resolve(parseFramework(t, "net8.0"), nil, []string{""})
	require.ErrorIs(t, err, domain.ErrMalformedFramework)
}
