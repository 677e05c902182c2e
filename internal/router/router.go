package router

import "github.com/transitlab/catalogue/internal/catalogue"

// ItemKind distinguishes the two kinds of itinerary entry.
type ItemKind int

const (
	// ItemWait is time spent standing at a stop before boarding.
	ItemWait ItemKind = iota
	// ItemBus is time spent riding span_count stops on a named bus.
	ItemBus
)

// Item is one entry of a Route's itinerary, in chronological order. A Wait
// item always immediately precedes the Bus item it leads into (spec.md
// §4.4's ordering guarantee), which falls out structurally from the
// two-vertex expansion rather than needing to be enforced here.
type Item struct {
	Kind ItemKind

	StopName string  // set for ItemWait
	BusName  string  // set for ItemBus
	Span     int     // set for ItemBus: number of stops travelled
	Time     float64 // minutes
}

// Route is the result of a shortest-path query.
type Route struct {
	TotalTime float64
	Items     []Item
}

// BuildRoute finds the minimum-time itinerary from -> to over g. Identical
// endpoints return a zero-cost, empty-itinerary route without running
// Dijkstra (spec.md §4.4/§9). ok is false only when no path exists.
func BuildRoute(g *Graph, from, to *catalogue.Stop) (Route, bool) {
	if from == to {
		return Route{}, true
	}

	edges, ok := shortestPath(g, g.WaitVertex(from), g.WaitVertex(to))
	if !ok {
		return Route{}, false
	}

	items := make([]Item, 0, len(edges))
	var total float64
	for _, e := range edges {
		total += e.Weight
		switch e.Kind {
		case EdgeWait:
			items = append(items, Item{Kind: ItemWait, StopName: e.WaitStop.Name, Time: e.Weight})
		case EdgeRide:
			items = append(items, Item{Kind: ItemBus, BusName: e.Bus.Name, Span: e.Span, Time: e.Weight})
		}
	}

	return Route{TotalTime: total, Items: items}, true
}
