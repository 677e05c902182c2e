// Package catalogue implements the stably-addressed graph of stops and
// buses described in spec.md §3/§4.2: an asymmetric pairwise road-distance
// table plus two derived indexes (stop->bus-set, bus->RouteInfo) that stay
// consistent as records are ingested.
//
// Grounded in the original transport_catalogue.h/.cpp (unordered_map
// name->pointer lookups, a two-probe asymmetric distance table) and in the
// teacher's internal/graph/memory.go, which holds its routing graph as
// plain in-process maps rather than going back to Postgres per query.
package catalogue

import (
	"sort"

	"github.com/transitlab/catalogue/internal/geo"
)

type distKey struct {
	from *Stop
	to   *Stop
}

// Catalogue is the frozen-after-ingest store of stops, buses, and road
// distances. Create one with New: the zero value has nil maps, and AddStop
// on it panics.
type Catalogue struct {
	stopsByName map[string]*Stop
	busesByName map[string]*Bus
	distances   map[distKey]int
	stopBuses   map[*Stop]map[*Bus]struct{}
}

// New returns an empty Catalogue ready for ingest.
func New() *Catalogue {
	return &Catalogue{
		stopsByName: make(map[string]*Stop),
		busesByName: make(map[string]*Bus),
		distances:   make(map[distKey]int),
		stopBuses:   make(map[*Stop]map[*Bus]struct{}),
	}
}

// AddStop inserts a new stop. Re-insertion under the same name is rejected:
// the reference design treats duplicate stop names as an ingest error
// (spec.md §9, Open Question resolved).
func (c *Catalogue) AddStop(name string, coords geo.Coordinates) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, exists := c.stopsByName[name]; exists {
		return ErrDuplicateStop
	}

	stop := &Stop{Name: name, Coordinates: coords}
	c.stopsByName[name] = stop
	c.stopBuses[stop] = make(map[*Bus]struct{})
	return nil
}

// SetDistance records the directed distance from -> to in metres. Both
// stops must already exist and metres must be positive.
func (c *Catalogue) SetDistance(fromName, toName string, metres int) error {
	from, ok := c.stopsByName[fromName]
	if !ok {
		return ErrUnknownStop
	}
	to, ok := c.stopsByName[toName]
	if !ok {
		return ErrUnknownStop
	}
	if metres <= 0 {
		return ErrInvalidDistance
	}

	c.distances[distKey{from, to}] = metres
	return nil
}

// GetDistance implements the asymmetric lookup-with-fallback rule from
// spec.md §3: try (from,to), then (to,from), else unknown.
func (c *Catalogue) GetDistance(from, to *Stop) (metres int, ok bool) {
	if d, found := c.distances[distKey{from, to}]; found {
		return d, true
	}
	if d, found := c.distances[distKey{to, from}]; found {
		return d, true
	}
	return 0, false
}

// AddBus inserts a bus, resolving each stop name against the catalogue.
// Unknown stop names are silently dropped from the route — documented
// source behaviour (transport_catalogue.cpp::AddBus only appends stops it
// can resolve); spec.md §9 flags this as an Open Question, resolved here
// in favour of the source's documented behaviour rather than guessing a
// stricter one.
func (c *Catalogue) AddBus(name string, stopNames []string, isRoundtrip bool) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, exists := c.busesByName[name]; exists {
		return ErrDuplicateBus
	}

	stops := make([]*Stop, 0, len(stopNames))
	for _, sn := range stopNames {
		if stop, ok := c.stopsByName[sn]; ok {
			stops = append(stops, stop)
		}
	}

	bus := &Bus{Name: name, Stops: stops, IsRoundtrip: isRoundtrip}
	c.busesByName[name] = bus

	seen := make(map[*Stop]struct{}, len(stops))
	for _, stop := range stops {
		if _, already := seen[stop]; already {
			continue
		}
		seen[stop] = struct{}{}
		c.stopBuses[stop][bus] = struct{}{}
	}

	return nil
}

// GetStop returns the stop with the given name, or nil if absent.
func (c *Catalogue) GetStop(name string) *Stop {
	return c.stopsByName[name]
}

// GetBus returns the bus with the given name, or nil if absent.
func (c *Catalogue) GetBus(name string) *Bus {
	return c.busesByName[name]
}

// GetBusesForStop returns the buses serving a stop, sorted by name. An
// unknown stop or one with no buses returns an empty (non-nil) slice.
func (c *Catalogue) GetBusesForStop(name string) []*Bus {
	stop, ok := c.stopsByName[name]
	if !ok {
		return []*Bus{}
	}

	buses := make([]*Bus, 0, len(c.stopBuses[stop]))
	for bus := range c.stopBuses[stop] {
		buses = append(buses, bus)
	}
	sort.Slice(buses, func(i, j int) bool { return buses[i].Name < buses[j].Name })
	return buses
}

// Stops returns every stop in the catalogue, sorted by name. Used by the
// router to assign a stable, dense vertex ordering (spec.md §4.3:
// "Enumerate stops in a stable order").
func (c *Catalogue) Stops() []*Stop {
	out := make([]*Stop, 0, len(c.stopsByName))
	for _, s := range c.stopsByName {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// GetRouteInfo computes the derived statistics for a bus: stop counts,
// road-distance route length (falling back to great-circle distance for any
// segment with no recorded road distance, per spec.md §4.2's explicit
// fallback rule), and curvature against the straight-line geo length.
func (c *Catalogue) GetRouteInfo(name string) (RouteInfo, bool) {
	bus, ok := c.busesByName[name]
	if !ok || len(bus.Stops) == 0 {
		return RouteInfo{}, false
	}

	materialized := bus.MaterializedStops()

	unique := make(map[*Stop]struct{}, len(bus.Stops))
	for _, s := range bus.Stops {
		unique[s] = struct{}{}
	}

	// Segment count: a circular route closes the loop (last stop back to
	// first, N segments over N stops); a linear route's materialized
	// sequence already duplicates the return leg, so consecutive pairs
	// alone cover it (2N-2 segments over 2N-1 materialized stops).
	segments := len(materialized) - 1
	if bus.IsRoundtrip && len(materialized) > 0 {
		segments = len(materialized)
	}

	var roadLength, geoLength float64
	for i := 0; i < segments; i++ {
		from := materialized[i]
		to := materialized[(i+1)%len(materialized)]

		segGeo := geo.ComputeDistance(from.Coordinates, to.Coordinates)
		geoLength += segGeo

		if d, found := c.GetDistance(from, to); found {
			roadLength += float64(d)
		} else {
			roadLength += segGeo
		}
	}

	var curvature float64
	if geoLength > 0 {
		curvature = roadLength / geoLength
	}

	return RouteInfo{
		StopsCount:       len(materialized),
		UniqueStopsCount: len(unique),
		RouteLength:      roadLength,
		Curvature:        curvature,
	}, true
}

// Buses returns every bus in the catalogue, sorted by name.
func (c *Catalogue) Buses() []*Bus {
	out := make([]*Bus, 0, len(c.busesByName))
	for _, b := range c.busesByName {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
