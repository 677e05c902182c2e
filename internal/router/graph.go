// Package router compiles a frozen catalogue into a two-vertex-per-stop
// routing graph and answers shortest-path queries over it.
//
// Grounded in original_source/transport-catalogue/transport_router.cpp: each
// stop becomes a wait vertex and a board vertex joined by a fixed-weight wait
// edge, and every bus contributes ride edges between the board vertex of an
// earlier stop and the wait vertex of a later one. The Go shape of the graph
// (adjacency keyed by vertex, edges carrying a tagged kind) follows the
// teacher's internal/graph/memory.go InMemoryGraph, which holds its routing
// graph as plain in-process maps rather than querying a database per edge.
package router

import "github.com/transitlab/catalogue/internal/catalogue"

// VertexID identifies a vertex in the compiled graph. Stop k receives wait
// vertex 2k and board vertex 2k+1 (spec.md §4.3).
type VertexID int

// EdgeKind distinguishes a wait edge (stand at a stop) from a ride edge
// (board and travel span_count stops on a bus).
type EdgeKind int

const (
	// EdgeWait is a fixed-weight edge from a stop's wait vertex to its
	// board vertex.
	EdgeWait EdgeKind = iota
	// EdgeRide is a bus edge from a boarding stop's board vertex to an
	// alighting stop's wait vertex.
	EdgeRide
)

// Edge is one directed arc of the compiled graph.
type Edge struct {
	To     VertexID
	Weight float64 // minutes
	Kind   EdgeKind

	// Populated for EdgeWait.
	WaitStop *catalogue.Stop

	// Populated for EdgeRide.
	Bus  *catalogue.Bus
	Span int
}

// Settings configures the router compile step (spec.md §4.3/§6).
type Settings struct {
	BusWaitTime float64 // minutes, >= 0
	BusVelocity float64 // km/h, > 0
}

// Graph is the compiled, immutable routing graph.
type Graph struct {
	adjacency  map[VertexID][]Edge
	waitVertex map[*catalogue.Stop]VertexID
	stopOf     map[VertexID]*catalogue.Stop
	vertexCnt  int
}

// VertexCount returns 2*|stops|, per spec.md §4.3.
func (g *Graph) VertexCount() int { return g.vertexCnt }

// WaitVertex returns a stop's wait vertex.
func (g *Graph) WaitVertex(stop *catalogue.Stop) VertexID { return g.waitVertex[stop] }

// BoardVertex returns a stop's board vertex, immediately following its wait
// vertex.
func (g *Graph) BoardVertex(stop *catalogue.Stop) VertexID { return g.waitVertex[stop] + 1 }

// StopAt resolves a wait vertex back to its stop, used when reconstructing
// an itinerary.
func (g *Graph) StopAt(v VertexID) *catalogue.Stop { return g.stopOf[v] }

// Edges returns the outgoing edges of v.
func (g *Graph) Edges(v VertexID) []Edge { return g.adjacency[v] }

// Compile builds the routing graph for a frozen catalogue. The result is
// immutable and safe for concurrent read-only use.
func Compile(cat *catalogue.Catalogue, settings Settings) *Graph {
	stops := cat.Stops()

	g := &Graph{
		adjacency:  make(map[VertexID][]Edge),
		waitVertex: make(map[*catalogue.Stop]VertexID, len(stops)),
		stopOf:     make(map[VertexID]*catalogue.Stop, len(stops)),
		vertexCnt:  2 * len(stops),
	}

	for k, stop := range stops {
		wait := VertexID(2 * k)
		board := wait + 1
		g.waitVertex[stop] = wait
		g.stopOf[wait] = stop

		g.adjacency[wait] = append(g.adjacency[wait], Edge{
			To:       board,
			Weight:   settings.BusWaitTime,
			Kind:     EdgeWait,
			WaitStop: stop,
		})
	}

	metresPerMinute := settings.BusVelocity * 1000 / 60

	for _, bus := range cat.Buses() {
		listed := bus.Stops
		n := len(listed)

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				g.addRideEdge(cat, bus, listed, i, j, metresPerMinute, false)
				if !bus.IsRoundtrip {
					g.addRideEdge(cat, bus, listed, i, j, metresPerMinute, true)
				}
			}
		}

		if bus.IsRoundtrip && n > 1 {
			g.addClosingEdge(cat, bus, listed, metresPerMinute)
		}
	}

	return g
}

// addRideEdge adds the ride edge for the ordered pair (i, j) with i < j,
// summing per-segment road distance either forward (s[i]->s[i+1]->...->s[j])
// or, when reverse is true, in the opposite traversal direction
// (s[i+1]->s[i], ..., s[j]->s[j-1]) per spec.md §4.3 step 3.
func (g *Graph) addRideEdge(cat *catalogue.Catalogue, bus *catalogue.Bus, stops []*catalogue.Stop, i, j int, metresPerMinute float64, reverse bool) {
	var metres int
	for k := i; k < j; k++ {
		if reverse {
			metres += segmentDistance(cat, stops[k+1], stops[k])
		} else {
			metres += segmentDistance(cat, stops[k], stops[k+1])
		}
	}
	if metres <= 0 {
		return
	}

	weight := float64(metres) / metresPerMinute
	span := j - i

	from, to := g.BoardVertex(stops[i]), g.WaitVertex(stops[j])
	if reverse {
		from, to = g.BoardVertex(stops[j]), g.WaitVertex(stops[i])
	}

	g.adjacency[from] = append(g.adjacency[from], Edge{
		To:     to,
		Weight: weight,
		Kind:   EdgeRide,
		Bus:    bus,
		Span:   span,
	})
}

// addClosingEdge adds the single wrap-around edge a circular bus contributes
// from its last listed stop back to its first (spec.md §4.3 step 4).
func (g *Graph) addClosingEdge(cat *catalogue.Catalogue, bus *catalogue.Bus, stops []*catalogue.Stop, metresPerMinute float64) {
	last, first := stops[len(stops)-1], stops[0]
	metres := segmentDistance(cat, last, first)
	if metres <= 0 {
		return
	}

	g.adjacency[g.BoardVertex(last)] = append(g.adjacency[g.BoardVertex(last)], Edge{
		To:     g.WaitVertex(first),
		Weight: float64(metres) / metresPerMinute,
		Kind:   EdgeRide,
		Bus:    bus,
		Span:   1,
	})
}

// segmentDistance looks up the road distance between adjacent stops (with
// the catalogue's reverse-pair fallback), treating an unresolved pair as 0
// rather than falling back to great-circle distance: that fallback is
// RouteInfo's rule, not the router's. A ride edge is still emitted when its
// other segments sum to a positive distance; it is skipped only when the
// total is 0.
func segmentDistance(cat *catalogue.Catalogue, from, to *catalogue.Stop) int {
	if d, ok := cat.GetDistance(from, to); ok {
		return d
	}
	return 0
}
