package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingRequiredProperty is returned when a mandatory project property
	// (such as the restore output path) is not configured.
	ErrMissingRequiredProperty = zerr.New("missing required property")

	// ErrMalformedFramework is returned when a target framework moniker cannot be parsed.
	ErrMalformedFramework = zerr.New("malformed framework moniker")

	// ErrMalformedVersionRange is returned when a version range string cannot be parsed.
	ErrMalformedVersionRange = zerr.New("malformed version range")

	// ErrLockArtifactUnreadable is returned when the lock artifact exists but cannot
	// be read or parsed. The cache boundary downgrades it to a logged warning.
	ErrLockArtifactUnreadable = zerr.New("lock artifact unreadable")

	// ErrNoTargetFrameworks is returned when a project declares no target frameworks.
	ErrNoTargetFrameworks = zerr.New("project declares no target frameworks")
)
