package catalogue

import "github.com/transitlab/catalogue/internal/geo"

// Stop is a named geographic point. Once added to a Catalogue its address
// never changes — other entities (Bus.Stops, the stop->bus index, and later
// the router) hold bare pointers into the Catalogue's stop store.
type Stop struct {
	Name        string
	Coordinates geo.Coordinates
}

// Bus is a named ordered sequence of Stop references plus a circular/linear
// flag. Stops may repeat; the slice is never mutated after AddBus returns.
type Bus struct {
	Name        string
	Stops       []*Stop
	IsRoundtrip bool
}

// RouteInfo holds the derived per-bus statistics from spec.md §4.2.
type RouteInfo struct {
	StopsCount       int
	UniqueStopsCount int
	RouteLength      float64
	Curvature        float64
}

// MaterializedStops returns the actual traversal order: the listed stops
// as-is for a circular bus, or the listed stops followed by their reverse
// (excluding the duplicated turnaround stop) for a linear one. This is the
// sequence the renderer draws and RouteInfo sums distances over.
func (b *Bus) MaterializedStops() []*Stop {
	if b.IsRoundtrip || len(b.Stops) == 0 {
		return b.Stops
	}

	out := make([]*Stop, 0, 2*len(b.Stops)-1)
	out = append(out, b.Stops...)
	for i := len(b.Stops) - 2; i >= 0; i-- {
		out = append(out, b.Stops[i])
	}
	return out
}
