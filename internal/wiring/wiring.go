// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/hop/internal/adapters/config"
	_ "go.trai.ch/hop/internal/adapters/logger"
	_ "go.trai.ch/hop/internal/adapters/mbta"
	_ "go.trai.ch/hop/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/hop/internal/app"
)
