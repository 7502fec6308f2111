// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/sema/internal/adapters/config"
	_ "go.trai.ch/sema/internal/adapters/daemon"
	_ "go.trai.ch/sema/internal/adapters/logger"
	_ "go.trai.ch/sema/internal/adapters/portalloc"
	_ "go.trai.ch/sema/internal/adapters/registry"
	// Register app nodes.
	_ "go.trai.ch/sema/internal/app"
)
