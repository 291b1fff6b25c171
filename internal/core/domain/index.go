package domain

// StopRouteIndex records, for each stop name, the routes serving it.
// Route order per stop is insertion order and drives tie-breaking downstream.
type StopRouteIndex struct {
	routesByStop map[string][]string
	stopOrder    []string
	routeOrder   []string
	stopCounts   map[string]int
}

// NewStopRouteIndex creates an empty index.
func NewStopRouteIndex() *StopRouteIndex {
	return &StopRouteIndex{
		routesByStop: make(map[string][]string),
		stopCounts:   make(map[string]int),
	}
}

// NewStopRouteIndexFrom builds an index from route/stop listings in the given order.
func NewStopRouteIndexFrom(listings []RouteStops) *StopRouteIndex {
	idx := NewStopRouteIndex()
	for _, l := range listings {
		names := make([]string, 0, len(l.Stops))
		for _, s := range l.Stops {
			names = append(names, s.Name)
		}
		idx.Add(l.Route.Name, names)
	}
	return idx
}

// Add records that routeName serves every stop in stopNames.
// Entries are appended without deduplication.
func (idx *StopRouteIndex) Add(routeName string, stopNames []string) {
	if _, seen := idx.stopCounts[routeName]; !seen {
		idx.routeOrder = append(idx.routeOrder, routeName)
	}
	idx.stopCounts[routeName] += len(stopNames)

	for _, stop := range stopNames {
		routes, exists := idx.routesByStop[stop]
		if !exists {
			idx.stopOrder = append(idx.stopOrder, stop)
		}
		idx.routesByStop[stop] = append(routes, routeName)
	}
}

// RoutesServing returns the routes recorded for stopName, or nil if the stop is unknown.
// A recorded stop always has at least one route.
func (idx *StopRouteIndex) RoutesServing(stopName string) []string {
	return idx.routesByStop[stopName]
}

// HasStop reports whether stopName has been recorded.
func (idx *StopRouteIndex) HasStop(stopName string) bool {
	_, ok := idx.routesByStop[stopName]
	return ok
}

// Stops returns every stop name in first-appearance order.
func (idx *StopRouteIndex) Stops() []string {
	return idx.stopOrder
}

// Routes returns every route name in first-appearance order,
// including routes added with no stops.
func (idx *StopRouteIndex) Routes() []string {
	return idx.routeOrder
}

// StopCount returns the number of stops recorded for routeName.
func (idx *StopRouteIndex) StopCount(routeName string) int {
	return idx.stopCounts[routeName]
}

// TransferStops returns the stops served by two or more routes, in first-appearance order.
func (idx *StopRouteIndex) TransferStops() []string {
	var out []string
	for _, stop := range idx.stopOrder {
		if len(idx.routesByStop[stop]) > 1 {
			out = append(out, stop)
		}
	}
	return out
}
