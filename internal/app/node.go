package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hop/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/hop/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/hop/internal/adapters/mbta"      //nolint:depguard // Wired in app layer
	"go.trai.ch/hop/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/hop/internal/core/domain"
	"go.trai.ch/hop/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components groups what the entry point needs from the dependency graph.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			mbta.NodeID,
			logger.NodeID,
			config.SettingsNodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			source, err := graft.Dep[ports.TransitSource](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(source, log, settings.Concurrency).WithTelemetry(tel), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log, Telemetry: tel}, nil
		},
	})
}
