// Package lockfile reads the externally produced resolution artifact.
// The JSON format is a read-only contract owned by the restore engine.
package lockfile

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/stanza/internal/core/domain"
	"go.trai.ch/zerr"
)

// Loader implements ports.LockArtifactLoader for JSON lock artifacts.
type Loader struct{}

// NewLoader creates a lock artifact loader.
func NewLoader() *Loader {
	return &Loader{}
}

// artifactDTO mirrors the on-disk artifact structure.
type artifactDTO struct {
	Version int         `json:"version"`
	Targets []targetDTO `json:"targets"`
}

type targetDTO struct {
	Framework string    `json:"framework"`
	Edges     []edgeDTO `json:"edges"`
}

type edgeDTO struct {
	ID      string `json:"id"`
	Version string `json:"version"`
	Type    string `json:"type"`
}

// Load parses the artifact at path. An absent file returns (nil, nil);
// unreadable or malformed content returns an error wrapping
// domain.ErrLockArtifactUnreadable for the cache boundary to downgrade.
func (l *Loader) Load(ctx context.Context, path string) (*domain.LockSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	//nolint:gosec // path is provided by the owning project
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		// Wrap the sentinel so the cache boundary can match it with errors.Is.
		readErr := zerr.Wrap(domain.ErrLockArtifactUnreadable, err.Error())
		return nil, zerr.With(readErr, "path", path)
	}

	var dto artifactDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		parseErr := zerr.Wrap(domain.ErrLockArtifactUnreadable, err.Error())
		return nil, zerr.With(parseErr, "path", path)
	}

	snapshot := &domain.LockSnapshot{
		Version: dto.Version,
		Targets: make([]domain.LockTarget, 0, len(dto.Targets)),
	}
	for _, target := range dto.Targets {
		edges := make([]domain.LockEdge, 0, len(target.Edges))
		for _, edge := range target.Edges {
			edges = append(edges, domain.LockEdge{
				ID:      edge.ID,
				Version: edge.Version,
				Type:    edge.Type,
			})
		}
		snapshot.Targets = append(snapshot.Targets, domain.LockTarget{
			Framework: target.Framework,
			Edges:     edges,
		})
	}
	return snapshot, nil
}
