package mbta

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hop/internal/adapters/config"
	"go.trai.ch/hop/internal/adapters/logger"
	"go.trai.ch/hop/internal/core/domain"
	"go.trai.ch/hop/internal/core/ports"
)

// NodeID is the unique identifier for the MBTA transit source Graft node.
const NodeID graft.ID = "adapter.mbta"

func init() {
	graft.Register(graft.Node[ports.TransitSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.TransitSource, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewClient(settings, log), nil
		},
	})
}
