package domain

// RouteStopCount is a route name with the number of stops it serves.
type RouteStopCount struct {
	Route string
	Count int
}

// Transfer is a stop connecting two or more routes.
type Transfer struct {
	Stop   string
	Routes []string
}

// NetworkSummary aggregates stop counts and transfer points of a network.
type NetworkSummary struct {
	MostStops   RouteStopCount
	FewestStops RouteStopCount
	Transfers   []Transfer
}

// Summarize computes the network summary of idx.
// Ties on stop counts keep the route that appeared first.
// It returns nil when the index holds no routes.
func Summarize(idx *StopRouteIndex) *NetworkSummary {
	routes := idx.Routes()
	if len(routes) == 0 {
		return nil
	}

	first := RouteStopCount{Route: routes[0], Count: idx.StopCount(routes[0])}
	s := &NetworkSummary{MostStops: first, FewestStops: first}

	for _, r := range routes[1:] {
		count := idx.StopCount(r)
		if count > s.MostStops.Count {
			s.MostStops = RouteStopCount{Route: r, Count: count}
		}
		if count < s.FewestStops.Count {
			s.FewestStops = RouteStopCount{Route: r, Count: count}
		}
	}

	for _, stop := range idx.TransferStops() {
		s.Transfers = append(s.Transfers, Transfer{Stop: stop, Routes: idx.RoutesServing(stop)})
	}

	return s
}
