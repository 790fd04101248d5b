// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/vitemap/internal/adapters/cache"
	_ "go.trai.ch/vitemap/internal/adapters/config"
	_ "go.trai.ch/vitemap/internal/adapters/detector"
	_ "go.trai.ch/vitemap/internal/adapters/fs"
	_ "go.trai.ch/vitemap/internal/adapters/logger"
	_ "go.trai.ch/vitemap/internal/adapters/manifest"
	_ "go.trai.ch/vitemap/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/vitemap/internal/app"
)
