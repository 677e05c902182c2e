package transit

import (
	"fmt"
	"sync"

	"github.com/transitlab/catalogue/internal/catalogue"
	"github.com/transitlab/catalogue/internal/renderer"
	"github.com/transitlab/catalogue/internal/router"
)

// Engine bundles a catalogue with its render and routing settings and
// answers StatRequests against it. The catalogue must be fully ingested
// before any query runs (spec.md §5: ingest and query never interleave).
type Engine struct {
	cat            *catalogue.Catalogue
	routeSettings  router.Settings
	renderSettings renderer.Settings

	compileOnce sync.Once
	graph       *router.Graph
}

// NewEngine wraps a frozen catalogue for querying.
func NewEngine(cat *catalogue.Catalogue, routeSettings router.Settings, renderSettings renderer.Settings) *Engine {
	return &Engine{cat: cat, routeSettings: routeSettings, renderSettings: renderSettings}
}

// Ingest loads base records into cat in the mandated order — stops, then
// distances, then buses — regardless of the order the caller supplies them
// in (spec.md §6). It returns the first ingest-time error encountered; no
// partial catalogue is published to queries on failure.
func Ingest(cat *catalogue.Catalogue, stops []BaseStop, buses []BaseBus) error {
	for _, s := range stops {
		if err := cat.AddStop(s.Name, s.Coordinates); err != nil {
			return fmt.Errorf("ingest stop %q: %w", s.Name, err)
		}
	}

	for _, s := range stops {
		for toName, metres := range s.RoadDistances {
			if err := cat.SetDistance(s.Name, toName, metres); err != nil {
				return fmt.Errorf("ingest distance %q->%q: %w", s.Name, toName, err)
			}
		}
	}

	for _, b := range buses {
		if err := cat.AddBus(b.Name, b.Stops, b.IsRoundtrip); err != nil {
			return fmt.Errorf("ingest bus %q: %w", b.Name, err)
		}
	}

	return nil
}

// graphLazy compiles the routing graph on first use and reuses it
// thereafter (spec.md §5/§9: lazy router compile, single-entry path).
func (e *Engine) graphLazy() *router.Graph {
	e.compileOnce.Do(func() {
		e.graph = router.Compile(e.cat, e.routeSettings)
	})
	return e.graph
}

// Process answers a batch of queries in order, one response per request. No
// error escapes this loop: an unrecognised request type or a not-found
// lookup is encoded into that request's response (spec.md §7).
func (e *Engine) Process(requests []StatRequest) []StatResponse {
	responses := make([]StatResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, e.handle(req))
	}
	return responses
}

func (e *Engine) handle(req StatRequest) StatResponse {
	switch req.Type {
	case "Stop":
		return e.handleStop(req)
	case "Bus":
		return e.handleBus(req)
	case "Map":
		return e.handleMap(req)
	case "Route":
		return e.handleRoute(req)
	default:
		return StatResponse{RequestID: req.ID, ErrorMessage: fmt.Sprintf("unknown request type: %s", req.Type)}
	}
}

const notFound = "not found"

func (e *Engine) handleStop(req StatRequest) StatResponse {
	if e.cat.GetStop(req.Name) == nil {
		return StatResponse{RequestID: req.ID, ErrorMessage: notFound}
	}

	buses := e.cat.GetBusesForStop(req.Name)
	names := make([]string, len(buses))
	for i, b := range buses {
		names[i] = b.Name
	}

	return StatResponse{RequestID: req.ID, Buses: names}
}

func (e *Engine) handleBus(req StatRequest) StatResponse {
	info, ok := e.cat.GetRouteInfo(req.Name)
	if !ok {
		return StatResponse{RequestID: req.ID, ErrorMessage: notFound}
	}

	return StatResponse{
		RequestID:       req.ID,
		RouteLength:     int(info.RouteLength + 0.5),
		Curvature:       info.Curvature,
		StopCount:       info.StopsCount,
		UniqueStopCount: info.UniqueStopsCount,
	}
}

func (e *Engine) handleMap(req StatRequest) StatResponse {
	doc := renderer.Render(e.cat.Buses(), e.renderSettings)
	return StatResponse{RequestID: req.ID, Map: doc.Render()}
}

func (e *Engine) handleRoute(req StatRequest) StatResponse {
	from := e.cat.GetStop(req.From)
	to := e.cat.GetStop(req.To)
	if from == nil || to == nil {
		return StatResponse{RequestID: req.ID, ErrorMessage: notFound}
	}

	route, ok := router.BuildRoute(e.graphLazy(), from, to)
	if !ok {
		return StatResponse{RequestID: req.ID, ErrorMessage: notFound}
	}

	items := make([]Item, len(route.Items))
	for i, it := range route.Items {
		switch it.Kind {
		case router.ItemWait:
			items[i] = Item{Type: "Wait", StopName: it.StopName, Time: it.Time}
		case router.ItemBus:
			items[i] = Item{Type: "Bus", Bus: it.BusName, SpanCount: it.Span, Time: it.Time}
		}
	}

	return StatResponse{RequestID: req.ID, TotalTime: route.TotalTime, Items: items}
}
