// Package renderer projects geographic coordinates into an SVG viewport and
// draws the transit map: route polylines, bus labels, stop markers, and
// stop labels, in the strict z-order spec.md §4.6 requires.
//
// Grounded in original_source/transport-catalogue/map_renderer.cpp
// (GetRouteLines, GetNameBusRoute, GetStopsSymbols, GetStopsLabels, GetSVG).
// map_renderer.h did not survive the original source's file filtering, so
// the projector formula below follows spec.md §4.5 directly rather than a
// ported header.
package renderer

import (
	"math"

	"github.com/transitlab/catalogue/internal/geo"
)

const zeroTolerance = 1e-6

// Projector maps (lat, lon) to SVG (x, y) via a min-max equirectangular
// projection scaled to fit a padded viewport.
type Projector struct {
	minLon, maxLat float64
	zoom, padding  float64
	empty          bool
}

// NewProjector builds a projector for the given point set and viewport. An
// empty point set produces a projector that maps everything to
// (padding, padding).
func NewProjector(points []geo.Coordinates, width, height, padding float64) *Projector {
	if len(points) == 0 {
		return &Projector{padding: padding, empty: true}
	}

	minLon, maxLon := points[0].Longitude, points[0].Longitude
	minLat, maxLat := points[0].Latitude, points[0].Latitude
	for _, p := range points[1:] {
		minLon = math.Min(minLon, p.Longitude)
		maxLon = math.Max(maxLon, p.Longitude)
		minLat = math.Min(minLat, p.Latitude)
		maxLat = math.Max(maxLat, p.Latitude)
	}

	var zoomX, zoomY float64
	var haveX, haveY bool
	if lonSpan := maxLon - minLon; math.Abs(lonSpan) >= zeroTolerance {
		zoomX = (width - 2*padding) / lonSpan
		haveX = true
	}
	if latSpan := maxLat - minLat; math.Abs(latSpan) >= zeroTolerance {
		zoomY = (height - 2*padding) / latSpan
		haveY = true
	}

	var zoom float64
	switch {
	case haveX && haveY:
		zoom = math.Min(zoomX, zoomY)
	case haveX:
		zoom = zoomX
	case haveY:
		zoom = zoomY
	}

	return &Projector{minLon: minLon, maxLat: maxLat, zoom: zoom, padding: padding}
}

// Project maps a coordinate to SVG (x, y).
func (p *Projector) Project(c geo.Coordinates) (x, y float64) {
	if p.empty {
		return p.padding, p.padding
	}
	x = (c.Longitude-p.minLon)*p.zoom + p.padding
	y = (p.maxLat-c.Latitude)*p.zoom + p.padding
	return x, y
}
