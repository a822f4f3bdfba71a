package domain

// LockSnapshot is the parsed, read-only view of a previously persisted
// resolution artifact. Its on-disk format is an external contract owned by
// the restore engine; this core only consumes it.
type LockSnapshot struct {
	// Version is the artifact format version.
	Version int

	// Targets holds the per-framework resolved edges, in artifact order.
	Targets []LockTarget
}

// LockTarget groups the resolved edges for one target framework.
type LockTarget struct {
	// Framework is the short moniker the edges were resolved for.
	Framework string

	// Edges are the fully resolved packages, direct and transitive, in
	// artifact order.
	Edges []LockEdge
}

// LockEdge is one resolved package in the artifact.
type LockEdge struct {
	// ID is the resolved package id.
	ID string

	// Version is the exact resolved version.
	Version string

	// Type distinguishes directly requested packages from those pulled in
	// transitively. Known values: "direct", "transitive".
	Type string
}

// EdgeTypeDirect and EdgeTypeTransitive are the known LockEdge types.
const (
	EdgeTypeDirect     = "direct"
	EdgeTypeTransitive = "transitive"
)

// Identity projects the edge onto a PackageIdentity.
func (e LockEdge) Identity() PackageIdentity {
	return PackageIdentity{ID: e.ID, Version: e.Version}
}
