package domain

import "iter"

// ConnectivityGraph is an undirected graph whose nodes are routes and whose
// edges join routes sharing at least one stop.
type ConnectivityGraph struct {
	order     []string
	neighbors map[string][]string
	edges     map[string]map[string]struct{}
}

// NewConnectivityGraph derives the connectivity graph from a populated index.
// Every route of the index becomes a node, even when it has no neighbors.
func NewConnectivityGraph(idx *StopRouteIndex) *ConnectivityGraph {
	g := &ConnectivityGraph{
		neighbors: make(map[string][]string),
		edges:     make(map[string]map[string]struct{}),
	}

	for _, route := range idx.Routes() {
		g.addRoute(route)
	}

	for _, stop := range idx.Stops() {
		routes := idx.RoutesServing(stop)
		if len(routes) < 2 {
			continue
		}
		for _, a := range routes {
			for _, b := range routes {
				g.connect(a, b)
			}
		}
	}

	return g
}

func (g *ConnectivityGraph) addRoute(route string) {
	if _, exists := g.edges[route]; exists {
		return
	}
	g.order = append(g.order, route)
	g.edges[route] = make(map[string]struct{})
}

// connect adds the edge a-b. Self-pairs and repeated edges are ignored.
func (g *ConnectivityGraph) connect(a, b string) {
	if a == b {
		return
	}
	g.addRoute(a)
	g.addRoute(b)
	if _, exists := g.edges[a][b]; !exists {
		g.edges[a][b] = struct{}{}
		g.neighbors[a] = append(g.neighbors[a], b)
	}
	if _, exists := g.edges[b][a]; !exists {
		g.edges[b][a] = struct{}{}
		g.neighbors[b] = append(g.neighbors[b], a)
	}
}

// Routes returns the routes in enumeration order.
func (g *ConnectivityGraph) Routes() []string {
	return g.order
}

// Len returns the number of routes in the graph.
func (g *ConnectivityGraph) Len() int {
	return len(g.order)
}

// Neighbors returns the routes adjacent to route in insertion order.
func (g *ConnectivityGraph) Neighbors(route string) []string {
	return g.neighbors[route]
}

// Walk returns an iterator over each route and its neighbors in enumeration order.
func (g *ConnectivityGraph) Walk() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for _, route := range g.order {
			if !yield(route, g.neighbors[route]) {
				return
			}
		}
	}
}
