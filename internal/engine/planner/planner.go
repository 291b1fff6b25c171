// Package planner answers stop-to-stop route queries over a loaded network.
package planner

import (
	"slices"
	"sync"

	"go.trai.ch/hop/internal/core/domain"
	"go.trai.ch/zerr"
)

// Session owns the connectivity graph of one network and the forwarding table
// derived from it. The table is built on first use and shared by all queries.
type Session struct {
	index *domain.StopRouteIndex
	graph *domain.ConnectivityGraph

	build func(*domain.ConnectivityGraph) *domain.ForwardingTable
	once  sync.Once
	table *domain.ForwardingTable
}

// NewSession creates a Session over a fully populated index.
// The index must not be modified afterwards.
func NewSession(idx *domain.StopRouteIndex) *Session {
	return newSession(idx, domain.BuildForwardingTable)
}

func newSession(idx *domain.StopRouteIndex, build func(*domain.ConnectivityGraph) *domain.ForwardingTable) *Session {
	return &Session{
		index: idx,
		graph: domain.NewConnectivityGraph(idx),
		build: build,
	}
}

// Index returns the stop/route index the session was created with.
func (s *Session) Index() *domain.StopRouteIndex {
	return s.index
}

// Graph returns the connectivity graph of the network.
func (s *Session) Graph() *domain.ConnectivityGraph {
	return s.graph
}

// ForwardingTable returns the forwarding table, building it on first call.
// Concurrent first calls build it once.
func (s *Session) ForwardingTable() *domain.ForwardingTable {
	s.once.Do(func() {
		s.table = s.build(s.graph)
	})
	return s.table
}

// Resolve returns the routes to ride from stopA to stopB.
//
// When a route serves both stops the result is that single route, the first
// such route in stopA's order. Otherwise the first route of each stop is
// connected through the forwarding table, and Resolve(stopB, stopA) returns
// the same routes in reverse.
func (s *Session) Resolve(stopA, stopB string) ([]string, error) {
	for _, stop := range []string{stopA, stopB} {
		if !s.index.HasStop(stop) {
			return nil, zerr.With(domain.ErrUnknownStop, "stop", stop)
		}
	}
	routesA := s.index.RoutesServing(stopA)
	routesB := s.index.RoutesServing(stopB)

	for _, r := range routesA {
		if slices.Contains(routesB, r) {
			return []string{r}, nil
		}
	}

	return s.ForwardingTable().Path(routesA[0], routesB[0])
}
