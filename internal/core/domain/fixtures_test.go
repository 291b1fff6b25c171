package domain_test

import "go.trai.ch/hop/internal/core/domain"

// line is a route name with its stops, in insertion order.
type line struct {
	route string
	stops []string
}

func buildIndex(lines ...line) *domain.StopRouteIndex {
	idx := domain.NewStopRouteIndex()
	for _, l := range lines {
		idx.Add(l.route, l.stops)
	}
	return idx
}

// threeLines is Red and Orange meeting at Downtown Crossing, Orange and Blue at State.
func threeLines() *domain.StopRouteIndex {
	return buildIndex(
		line{"Red", []string{"Alewife", "Downtown Crossing", "Ashmont"}},
		line{"Orange", []string{"Oak Grove", "Downtown Crossing", "State", "Forest Hills"}},
		line{"Blue", []string{"Wonderland", "State", "Bowdoin"}},
	)
}
