package app

import (
	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/sema/internal/core/ports"
)

// Components contains the initialized application components. This struct
// provides controlled access to what the CLI layer needs.
type Components struct {
	App      *App
	Logger   ports.Logger
	Settings domain.Settings
}
