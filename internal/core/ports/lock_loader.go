package ports

import (
	"context"

	"go.trai.ch/stanza/internal/core/domain"
)

// LockArtifactLoader parses the resolution artifact at a path.
//
// An absent artifact is not an error: Load returns (nil, nil). Malformed
// content returns an error wrapping domain.ErrLockArtifactUnreadable, which
// the cache boundary downgrades to a logged warning.
//
//go:generate go run go.uber.org/mock/mockgen -source=lock_loader.go -destination=mocks/mock_lock_loader.go -package=mocks
type LockArtifactLoader interface {
	Load(ctx context.Context, path string) (*domain.LockSnapshot, error)
}
