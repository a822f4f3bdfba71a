package lockfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stanza/internal/adapters/lockfile"
	"go.trai.ch/stanza/internal/core/domain"
	"go.trai.ch/zerr"
)

const sampleArtifact = `{
  "version": 1,
  "targets": [
    {
      "framework": "net8.0",
      "edges": [
        {"id": "PackageA", "version": "1.0.0", "type": "direct"},
        {"id": "TransitiveB", "version": "2.3.4", "type": "transitive"}
      ]
    }
  ]
}`

func TestLoader_Parse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stanza.lock.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleArtifact), 0o600))

	snapshot, err := lockfile.NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.NotNil(t, snapshot)

	assert.Equal(t, 1, snapshot.Version)
	require.Len(t, snapshot.Targets, 1)
	assert.Equal(t, "net8.0", snapshot.Targets[0].Framework)
	require.Len(t, snapshot.Targets[0].Edges, 2)
	assert.Equal(t, domain.EdgeTypeDirect, snapshot.Targets[0].Edges[0].Type)
	assert.Equal(t, domain.EdgeTypeTransitive, snapshot.Targets[0].Edges[1].Type)
	assert.Equal(t, domain.PackageIdentity{ID: "TransitiveB", Version: "2.3.4"},
		snapshot.Targets[0].Edges[1].Identity())
}

func TestLoader_AbsentFile(t *testing.T) {
	snapshot, err := lockfile.NewLoader().Load(
		context.Background(), filepath.Join(t.TempDir(), "missing.lock.json"))
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestLoader_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stanza.lock.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := lockfile.NewLoader().Load(context.Background(), path)
	require.ErrorIs(t, err, domain.ErrLockArtifactUnreadable)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, path, zErr.Metadata()["path"])
}

func TestLoader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := lockfile.NewLoader().Load(ctx, "whatever.json")
	require.ErrorIs(t, err, context.Canceled)
}
