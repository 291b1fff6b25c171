// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/hop/internal/core/domain"
)

// TransitSource provides the routes and stops of a transit network.
//
//go:generate mockgen -source=transit.go -destination=mocks/mock_transit.go -package=mocks
type TransitSource interface {
	// FetchSubwayRoutes returns the subway routes in the order the provider lists them.
	FetchSubwayRoutes(ctx context.Context) ([]domain.Route, error)

	// FetchStopsForRoute returns the stops served by the route with the given ID.
	FetchStopsForRoute(ctx context.Context, routeID string) ([]domain.Stop, error)
}
