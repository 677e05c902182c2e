// catalogue-demo builds a small fixture transit network, runs a batch of
// stat queries against it, and prints the results — a runnable example of
// wiring internal/catalogue, internal/router, internal/renderer, and
// internal/transit together, in the same spirit as the teacher's
// cmd/api/main.go bootstrap trace.
package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/transitlab/catalogue/internal/catalogue"
	"github.com/transitlab/catalogue/internal/geo"
	"github.com/transitlab/catalogue/internal/renderer"
	"github.com/transitlab/catalogue/internal/router"
	"github.com/transitlab/catalogue/internal/svg"
	"github.com/transitlab/catalogue/internal/transit"
)

func main() {
	cat := catalogue.New()

	stops := []transit.BaseStop{
		{Name: "Biryulyovo Zapadnoye", Coordinates: geo.Coordinates{Latitude: 55.574371, Longitude: 37.651700},
			RoadDistances: map[string]int{"Biryulyovo Tovarnaya": 2600}},
		{Name: "Biryulyovo Tovarnaya", Coordinates: geo.Coordinates{Latitude: 55.592028, Longitude: 37.653656},
			RoadDistances: map[string]int{"Universam": 1380}},
		{Name: "Universam", Coordinates: geo.Coordinates{Latitude: 55.587655, Longitude: 37.645687},
			RoadDistances: map[string]int{"Biryulyovo Zapadnoye": 1280, "Biryulyovo Tovarnaya": 760}},
	}

	buses := []transit.BaseBus{
		{Name: "256", Stops: []string{"Biryulyovo Zapadnoye", "Biryulyovo Tovarnaya", "Universam"}, IsRoundtrip: true},
	}

	if err := transit.Ingest(cat, stops, buses); err != nil {
		log.Fatalf("ingest fixture network: %v", err)
	}

	engine := transit.NewEngine(cat,
		router.Settings{BusWaitTime: 6, BusVelocity: 40},
		renderer.Settings{
			Width: 600, Height: 400, Padding: 50,
			StopRadius: 5, LineWidth: 14,
			BusLabelFontSize: 20, BusLabelOffset: [2]float64{7, 15},
			StopLabelFontSize: 13, StopLabelOffset: [2]float64{7, -3},
			UnderlayerColor: svg.RGBA(255, 255, 255, 0.85), UnderlayerWidth: 3,
			ColorPalette: []svg.Color{svg.Named("green"), svg.RGB(255, 160, 0), svg.Named("red")},
		},
	)

	responses := engine.Process([]transit.StatRequest{
		{ID: 1, Type: "Bus", Name: "256"},
		{ID: 2, Type: "Stop", Name: "Universam"},
		{ID: 3, Type: "Route", From: "Biryulyovo Zapadnoye", To: "Universam"},
		{ID: 4, Type: "Bus", Name: "nonexistent"},
		{ID: 5, Type: "Map"},
	})

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	for _, resp := range responses {
		if err := enc.Encode(resp); err != nil {
			log.Fatalf("encode response %d: %v", resp.RequestID, err)
		}
	}
}
