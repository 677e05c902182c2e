package renderer

import (
	"sort"

	"github.com/transitlab/catalogue/internal/catalogue"
	"github.com/transitlab/catalogue/internal/geo"
	"github.com/transitlab/catalogue/internal/svg"
)

// Settings configures map rendering (spec.md §6 render_settings).
type Settings struct {
	Width, Height, Padding float64
	StopRadius, LineWidth  float64
	BusLabelFontSize       int
	BusLabelOffset         [2]float64
	StopLabelFontSize      int
	StopLabelOffset        [2]float64
	UnderlayerColor        svg.Color
	UnderlayerWidth        float64
	ColorPalette           []svg.Color
}

// Render draws buses, in the given order, into an SVG document. buses with
// zero stops contribute nothing and do not consume a palette slot.
func Render(buses []*catalogue.Bus, settings Settings) *svg.Document {
	stopSet := make(map[*catalogue.Stop]struct{})
	for _, bus := range buses {
		for _, s := range bus.Stops {
			stopSet[s] = struct{}{}
		}
	}

	points := make([]geo.Coordinates, 0, len(stopSet))
	for s := range stopSet {
		points = append(points, s.Coordinates)
	}
	proj := NewProjector(points, settings.Width, settings.Height, settings.Padding)

	doc := &svg.Document{}

	type coloredBus struct {
		bus   *catalogue.Bus
		color svg.Color
	}
	var colored []coloredBus
	paletteIdx := 0

	// Phase 1: route polylines, input-key order.
	for _, bus := range buses {
		materialized := bus.MaterializedStops()
		if len(materialized) == 0 || len(settings.ColorPalette) == 0 {
			continue
		}

		color := settings.ColorPalette[paletteIdx%len(settings.ColorPalette)]
		paletteIdx++

		pts := make([]svg.Point, 0, len(materialized))
		for _, s := range materialized {
			x, y := proj.Project(s.Coordinates)
			pts = append(pts, svg.Point{X: x, Y: y})
		}

		lineWidth := settings.LineWidth
		doc.Add(svg.Polyline{
			Points: pts,
			Style: svg.PathStyle{
				Stroke:         &color,
				StrokeWidth:    &lineWidth,
				StrokeLineCap:  "round",
				StrokeLineJoin: "round",
			},
		})

		colored = append(colored, coloredBus{bus, color})
	}

	// Phase 2: bus labels, name-sorted order.
	sort.Slice(colored, func(i, j int) bool { return colored[i].bus.Name < colored[j].bus.Name })
	for _, cb := range colored {
		for _, stop := range busTermini(cb.bus) {
			x, y := proj.Project(stop.Coordinates)
			addLabel(doc, x, y, settings.BusLabelOffset, settings.BusLabelFontSize, "bold",
				cb.bus.Name, cb.color, settings.UnderlayerColor, settings.UnderlayerWidth)
		}
	}

	stops := make([]*catalogue.Stop, 0, len(stopSet))
	for s := range stopSet {
		stops = append(stops, s)
	}
	sort.Slice(stops, func(i, j int) bool { return stops[i].Name < stops[j].Name })

	// Phase 3: stop circles, name-sorted order.
	whiteFill := svg.Named("white")
	for _, s := range stops {
		x, y := proj.Project(s.Coordinates)
		doc.Add(svg.Circle{
			Center: svg.Point{X: x, Y: y},
			Radius: settings.StopRadius,
			Style:  svg.PathStyle{Fill: &whiteFill},
		})
	}

	// Phase 4: stop labels, name-sorted order.
	blackFill := svg.Named("black")
	for _, s := range stops {
		x, y := proj.Project(s.Coordinates)
		addLabel(doc, x, y, settings.StopLabelOffset, settings.StopLabelFontSize, "",
			s.Name, blackFill, settings.UnderlayerColor, settings.UnderlayerWidth)
	}

	return doc
}

// addLabel emits the underlayer/label text pair shared by bus and stop
// labels (spec.md §4.6's styling rules).
func addLabel(doc *svg.Document, x, y float64, offset [2]float64, fontSize int, weight, data string, fill, underlayer svg.Color, underlayerWidth float64) {
	pos := svg.Point{X: x, Y: y}
	off := svg.Point{X: offset[0], Y: offset[1]}

	ul := underlayer
	uw := underlayerWidth
	doc.Add(svg.Text{
		Position: pos, Offset: off, FontSize: fontSize, FontFamily: "Verdana", FontWeight: weight, Data: data,
		Style: svg.PathStyle{Fill: &ul, Stroke: &ul, StrokeWidth: &uw, StrokeLineCap: "round", StrokeLineJoin: "round"},
	})

	color := fill
	doc.Add(svg.Text{
		Position: pos, Offset: off, FontSize: fontSize, FontFamily: "Verdana", FontWeight: weight, Data: data,
		Style: svg.PathStyle{Fill: &color},
	})
}

// busTermini returns the stops whose labels a bus contributes: the first
// stop only for circular routes, or the first and (if distinct) last stop
// for linear routes.
func busTermini(bus *catalogue.Bus) []*catalogue.Stop {
	if len(bus.Stops) == 0 {
		return nil
	}
	first := bus.Stops[0]
	if bus.IsRoundtrip {
		return []*catalogue.Stop{first}
	}
	last := bus.Stops[len(bus.Stops)-1]
	if last == first {
		return []*catalogue.Stop{first}
	}
	return []*catalogue.Stop{first, last}
}
