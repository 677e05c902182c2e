// Package transit is the request adapter: it ingests base records in the
// required order, lazily compiles the routing graph on first Route query,
// and dispatches Stop/Bus/Map/Route queries to per-request responses.
//
// Grounded in original_source/transport-catalogue/request_handler.h/.cpp
// (RequestHandler wraps a catalogue and a renderer, builds a sorted,
// nil-skipping bus view for RenderMap) and the teacher's
// internal/graph.GetGraph() lazy-singleton-compile idiom, adapted from a
// package-global singleton to an Engine-scoped sync.Once field since
// spec.md §5 scopes lazy compile to one engine instance, not the process.
package transit

import "github.com/transitlab/catalogue/internal/geo"

// BaseStop is an ingest-time stop record (spec.md §6 base_requests,
// type="Stop").
type BaseStop struct {
	Name          string
	Coordinates   geo.Coordinates
	RoadDistances map[string]int // to-stop-name -> metres
}

// BaseBus is an ingest-time bus record (spec.md §6 base_requests,
// type="Bus").
type BaseBus struct {
	Name        string
	Stops       []string
	IsRoundtrip bool
}

// Item is one entry of a Route response's itinerary.
type Item struct {
	Type      string  `json:"type"`
	StopName  string  `json:"stop_name,omitempty"`
	Bus       string  `json:"bus,omitempty"`
	SpanCount int     `json:"span_count,omitempty"`
	Time      float64 `json:"time"`
}

// StatRequest is one query (spec.md §6 stat_requests).
type StatRequest struct {
	ID   int
	Type string // "Stop", "Bus", "Map", "Route"
	Name string // Stop, Bus
	From string // Route
	To   string // Route
}

// StatResponse is one query's result. Only the fields relevant to the
// request's type are populated; absent/not-found results carry
// ErrorMessage instead.
type StatResponse struct {
	RequestID int `json:"request_id"`

	Buses []string `json:"buses,omitempty"` // Stop

	RouteLength     int     `json:"route_length,omitempty"`      // Bus
	Curvature       float64 `json:"curvature,omitempty"`         // Bus
	StopCount       int     `json:"stop_count,omitempty"`        // Bus
	UniqueStopCount int     `json:"unique_stop_count,omitempty"` // Bus

	Map string `json:"map,omitempty"` // Map

	TotalTime float64 `json:"total_time,omitempty"` // Route
	Items     []Item  `json:"items,omitempty"`      // Route

	ErrorMessage string `json:"error_message,omitempty"`
}
