// Package resolver implements dependency specification resolution: the lock
// artifact cache, the package reference merger, the framework fallback
// resolver and the specification builder that composes their outputs.
package resolver

import (
	"slices"
	"strings"

	"go.trai.ch/stanza/internal/core/domain"
	"go.trai.ch/stanza/internal/core/ports"
)

// Merger fuses per-framework declarations and resolved transitive edges into
// the installed and transitive package lists. Deduplication across frameworks
// picks exactly one representative per distinct id; ties are broken by the
// injected framework ordering.
type Merger struct {
	comparer ports.FrameworkComparer
}

// NewMerger creates a Merger using the given framework ordering.
func NewMerger(comparer ports.FrameworkComparer) *Merger {
	return &Merger{comparer: comparer}
}

// occurrence is one sighting of a package id under a particular framework.
type occurrence struct {
	identity  domain.PackageIdentity
	framework domain.Framework
}

// MergeInstalled dedupes direct declarations by id. When an id is declared
// under several frameworks, the representative is the declaration under the
// most-preferred framework.
func (m *Merger) MergeInstalled(decls []domain.DependencyDeclaration) []domain.PackageIdentity {
	best := make(map[domain.InternedString]occurrence, len(decls))
	for _, d := range decls {
		m.keep(best, d.Key(), occurrence{identity: d.Identity(), framework: d.Framework})
	}
	return sorted(best)
}

// transitiveIndex memoizes the snapshot's transitive edges per package id.
// It is owned by the lock cache, built in bulk on refresh and discarded in
// bulk on staleness.
type transitiveIndex map[domain.InternedString][]occurrence

// IndexTransitive extracts the per-id transitive occurrences from a snapshot.
func (m *Merger) IndexTransitive(snapshot *domain.LockSnapshot) transitiveIndex {
	if snapshot == nil {
		return nil
	}
	index := make(transitiveIndex)
	for _, target := range snapshot.Targets {
		fw, err := domain.ParseFramework(target.Framework)
		if err != nil {
			// A target for a moniker the project does not understand cannot
			// win a tie-break; fold it under "any" instead of dropping data.
			fw = domain.AnyFramework
		}
		for _, edge := range target.Edges {
			if edge.Type != domain.EdgeTypeTransitive {
				continue
			}
			key := domain.NewCanonicalString(edge.ID)
			index[key] = append(index[key], occurrence{identity: edge.Identity(), framework: fw})
		}
	}
	return index
}

// MergeTransitive dedupes the indexed transitive entries by id, excluding
// every id already present in installed. The per-id representative follows
// the same framework ordering as MergeInstalled.
func (m *Merger) MergeTransitive(index transitiveIndex, installed []domain.PackageIdentity) []domain.PackageIdentity {
	if len(index) == 0 {
		return nil
	}

	installedKeys := make(map[domain.InternedString]struct{}, len(installed))
	for _, p := range installed {
		installedKeys[p.Key()] = struct{}{}
	}

	best := make(map[domain.InternedString]occurrence, len(index))
	for key, occurrences := range index {
		if _, ok := installedKeys[key]; ok {
			continue
		}
		for _, occ := range occurrences {
			m.keep(best, key, occ)
		}
	}
	return sorted(best)
}

// keep installs occ as the representative for key unless an entry under a
// more-preferred framework is already present.
func (m *Merger) keep(best map[domain.InternedString]occurrence, key domain.InternedString, occ occurrence) {
	current, ok := best[key]
	if !ok {
		best[key] = occ
		return
	}
	if m.comparer.Prefer(occ.framework, current.framework) {
		best[key] = occ
	}
}

// sorted flattens the representative table into a list ordered by canonical id.
func sorted(best map[domain.InternedString]occurrence) []domain.PackageIdentity {
	if len(best) == 0 {
		return nil
	}
	result := make([]domain.PackageIdentity, 0, len(best))
	for _, occ := range best {
		result = append(result, occ.identity)
	}
	slices.SortFunc(result, func(a, b domain.PackageIdentity) int {
		return strings.Compare(strings.ToLower(a.ID), strings.ToLower(b.ID))
	})
	return result
}
