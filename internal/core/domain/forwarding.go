package domain

import (
	"slices"

	"github.com/rhartert/sparsesets"
	"go.trai.ch/zerr"
)

// ForwardingTable maps an ordered (source, destination) route pair to the next
// route to board from source toward destination.
// It is immutable once built.
type ForwardingTable struct {
	next     map[string]map[string]string
	position map[string]int
}

// NextHop returns the next hop from src toward dst.
// The second result is false when dst is unreachable from src or src == dst.
func (t *ForwardingTable) NextHop(src, dst string) (string, bool) {
	hop, ok := t.next[src][dst]
	return hop, ok
}

// Len returns the number of (source, destination) entries.
func (t *ForwardingTable) Len() int {
	n := 0
	for _, row := range t.next {
		n += len(row)
	}
	return n
}

// Path returns the routes visited between from and to, starting with from and
// ending with to. The walk always starts at whichever route comes first in
// graph enumeration order, so Path(b, a) is exactly Path(a, b) reversed.
func (t *ForwardingTable) Path(from, to string) ([]string, error) {
	if t.position[to] < t.position[from] {
		path, ok := t.walk(to, from)
		if !ok {
			return nil, unreachable(from, to)
		}
		slices.Reverse(path)
		return path, nil
	}

	path, ok := t.walk(from, to)
	if !ok {
		return nil, unreachable(from, to)
	}
	return path, nil
}

// walk follows next hops from one route to another.
func (t *ForwardingTable) walk(from, to string) ([]string, bool) {
	path := []string{from}
	current := from
	// A simple path never visits more routes than the graph holds.
	for steps := 0; current != to; steps++ {
		hop, ok := t.next[current][to]
		if !ok || steps >= len(t.position) {
			return nil, false
		}
		path = append(path, hop)
		current = hop
	}
	return path, true
}

func unreachable(from, to string) error {
	err := zerr.With(ErrUnreachableRoutePair, "from_route", from)
	return zerr.With(err, "to_route", to)
}

// BuildForwardingTable computes next hops for every ordered pair of distinct,
// mutually reachable routes by expanding a frontier from each source route.
//
// A route joins the frontier in a sweep only through a neighbor settled in an
// earlier sweep, and inherits that neighbor's first hop. Connectors are tried in
// the route's neighbor order, and routes are swept in graph enumeration order.
// Sweeps stop once one settles nothing; routes still unsettled are unreachable
// and get no entry.
func BuildForwardingTable(g *ConnectivityGraph) *ForwardingTable {
	routes := g.Routes()
	n := len(routes)
	position := make(map[string]int, n)
	for i, r := range routes {
		position[r] = i
	}

	table := &ForwardingTable{
		next:     make(map[string]map[string]string, n),
		position: position,
	}

	settled := sparsesets.New(n)
	var found []int

	for _, src := range routes {
		row := make(map[string]string)
		settled.Clear()
		settled.Insert(position[src])

		for _, nb := range g.Neighbors(src) {
			if nb == src {
				continue
			}
			row[nb] = nb
			settled.Insert(position[nb])
		}

		for sweep := 0; sweep < n && len(settled.Content()) < n; sweep++ {
			found = found[:0]
			for i, candidate := range routes {
				if settled.Contains(i) {
					continue
				}
				if c, ok := findConnector(g.Neighbors(candidate), settled, position); ok {
					row[candidate] = row[c]
					found = append(found, i)
				}
			}
			if len(found) == 0 {
				break
			}
			for _, i := range found {
				settled.Insert(i)
			}
		}

		table.next[src] = row
	}

	return table
}

// findConnector returns the first of candidates already present in settled.
func findConnector(candidates []string, settled *sparsesets.Set, position map[string]int) (string, bool) {
	for _, c := range candidates {
		if settled.Contains(position[c]) {
			return c, true
		}
	}
	return "", false
}
