// Package domain contains the core transit models and the route connectivity logic.
package domain

// Route is a transit line as published by the transit data source.
type Route struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Stop is a station served by one or more routes.
type Stop struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RouteStops pairs a route with the stops it serves, in source order.
type RouteStops struct {
	Route Route
	Stops []Stop
}
