// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/stanza/internal/adapters/config"
	_ "go.trai.ch/stanza/internal/adapters/framework"
	_ "go.trai.ch/stanza/internal/adapters/lockfile"
	_ "go.trai.ch/stanza/internal/adapters/logger"
	_ "go.trai.ch/stanza/internal/adapters/project"
	_ "go.trai.ch/stanza/internal/adapters/telemetry"
	_ "go.trai.ch/stanza/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/stanza/internal/app"
	_ "go.trai.ch/stanza/internal/engine/resolver"
)
