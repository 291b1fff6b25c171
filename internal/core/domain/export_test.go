package domain

// Entries returns a copy of the table as nested maps keyed by source then destination.
func (t *ForwardingTable) Entries() map[string]map[string]string {
	out := make(map[string]map[string]string, len(t.next))
	for src, row := range t.next {
		cp := make(map[string]string, len(row))
		for dst, hop := range row {
			cp[dst] = hop
		}
		out[src] = cp
	}
	return out
}

// Adjacent reports whether a and b share a stop.
func (g *ConnectivityGraph) Adjacent(a, b string) bool {
	_, ok := g.edges[a][b]
	return ok
}
