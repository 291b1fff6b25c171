// Package app implements the application layer for hop.
package app

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/hop/internal/adapters/telemetry" //nolint:depguard // Default recorder
	"go.trai.ch/hop/internal/core/domain"
	"go.trai.ch/hop/internal/core/ports"
	"go.trai.ch/hop/internal/engine/planner"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App answers network queries. The network is fetched on first use and kept
// for the lifetime of the App; a failed fetch is retried on the next query.
type App struct {
	source      ports.TransitSource
	logger      ports.Logger
	telemetry   ports.Telemetry
	concurrency int

	mu      sync.Mutex
	session *planner.Session
}

// New creates a new App instance.
func New(source ports.TransitSource, log ports.Logger, concurrency int) *App {
	return &App{
		source:      source,
		logger:      log,
		telemetry:   telemetry.NoOp{},
		concurrency: max(concurrency, 1),
	}
}

// WithTelemetry sets the recorder of network load requests.
func (a *App) WithTelemetry(t ports.Telemetry) *App {
	a.telemetry = t
	return a
}

// ListRoutes returns the subway routes in provider order.
func (a *App) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	routes, err := a.source.FetchSubwayRoutes(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list routes")
	}
	return routes, nil
}

// RouteInfo summarizes stop counts and transfer stops of the network.
func (a *App) RouteInfo(ctx context.Context) (*domain.NetworkSummary, error) {
	session, err := a.Session(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Summarize(session.Index()), nil
}

// Directions returns the routes to ride from one stop to another.
func (a *App) Directions(ctx context.Context, from, to string) ([]string, error) {
	session, err := a.Session(ctx)
	if err != nil {
		return nil, err
	}
	return session.Resolve(from, to)
}

// Session returns the planner session of the network, loading the network on first call.
func (a *App) Session(ctx context.Context) (*planner.Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session != nil {
		return a.session, nil
	}

	listings, err := a.loadNetwork(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrNetworkLoadFailed.Error())
	}

	idx := domain.NewStopRouteIndexFrom(listings)
	a.session = planner.NewSession(idx)

	connections := 0
	for _, neighbors := range a.session.Graph().Walk() {
		connections += len(neighbors)
	}
	a.logger.Debug(fmt.Sprintf("loaded %d routes, %d stops and %d route connections",
		len(idx.Routes()), len(idx.Stops()), connections/2))
	return a.session, nil
}

// loadNetwork fetches the stops of every route concurrently. Results keep the
// route order so the index is built exactly as a sequential fetch would build it.
func (a *App) loadNetwork(ctx context.Context) ([]domain.RouteStops, error) {
	v := a.telemetry.Record(ctx, "routes")
	routes, err := a.source.FetchSubwayRoutes(ctx)
	v.Complete(err)
	if err != nil {
		return nil, err
	}
	if len(routes) == 0 {
		return nil, domain.ErrEmptyNetwork
	}

	listings := make([]domain.RouteStops, len(routes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for i, route := range routes {
		g.Go(func() error {
			v := a.telemetry.Record(gctx, "stops "+route.Name)
			stops, err := a.source.FetchStopsForRoute(gctx, route.ID)
			v.Complete(err)
			if err != nil {
				return zerr.With(err, "route", route.Name)
			}
			a.logger.Debug(fmt.Sprintf("fetched %d stops for %s", len(stops), route.Name))
			listings[i] = domain.RouteStops{Route: route, Stops: stops}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return listings, nil
}
