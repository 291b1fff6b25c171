package planner

import (
	"sync/atomic"

	"go.trai.ch/hop/internal/core/domain"
)

// NewCountingSession returns a Session whose forwarding table builds are
// counted in builds.
func NewCountingSession(idx *domain.StopRouteIndex, builds *atomic.Int32) *Session {
	return newSession(idx, func(g *domain.ConnectivityGraph) *domain.ForwardingTable {
		builds.Add(1)
		return domain.BuildForwardingTable(g)
	})
}
