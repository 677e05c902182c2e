package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitlab/catalogue/internal/catalogue"
	"github.com/transitlab/catalogue/internal/geo"
)

func buildOneTransferCatalogue(t *testing.T) *catalogue.Catalogue {
	t.Helper()
	cat := catalogue.New()
	require.NoError(t, cat.AddStop("S1", geo.Coordinates{Latitude: 1, Longitude: 1}))
	require.NoError(t, cat.AddStop("S2", geo.Coordinates{Latitude: 2, Longitude: 2}))
	require.NoError(t, cat.AddStop("S3", geo.Coordinates{Latitude: 3, Longitude: 3}))
	require.NoError(t, cat.SetDistance("S1", "S2", 4000))
	require.NoError(t, cat.SetDistance("S2", "S3", 2000))
	require.NoError(t, cat.AddBus("A", []string{"S1", "S2"}, true))
	require.NoError(t, cat.AddBus("B", []string{"S2", "S3"}, true))
	return cat
}

func TestBuildRouteOneTransfer(t *testing.T) {
	cat := buildOneTransferCatalogue(t)
	g := Compile(cat, Settings{BusWaitTime: 6, BusVelocity: 40})

	route, ok := BuildRoute(g, cat.GetStop("S1"), cat.GetStop("S3"))
	require.True(t, ok)

	assert.InDelta(t, 21.0, route.TotalTime, 1e-9)
	require.Len(t, route.Items, 4)

	assert.Equal(t, ItemWait, route.Items[0].Kind)
	assert.Equal(t, "S1", route.Items[0].StopName)
	assert.InDelta(t, 6, route.Items[0].Time, 1e-9)

	assert.Equal(t, ItemBus, route.Items[1].Kind)
	assert.Equal(t, "A", route.Items[1].BusName)
	assert.Equal(t, 1, route.Items[1].Span)
	assert.InDelta(t, 6, route.Items[1].Time, 1e-9)

	assert.Equal(t, ItemWait, route.Items[2].Kind)
	assert.Equal(t, "S2", route.Items[2].StopName)
	assert.InDelta(t, 6, route.Items[2].Time, 1e-9)

	assert.Equal(t, ItemBus, route.Items[3].Kind)
	assert.Equal(t, "B", route.Items[3].BusName)
	assert.Equal(t, 1, route.Items[3].Span)
	assert.InDelta(t, 3, route.Items[3].Time, 1e-9)
}

func TestBuildRouteIdenticalEndpoints(t *testing.T) {
	cat := buildOneTransferCatalogue(t)
	g := Compile(cat, Settings{BusWaitTime: 6, BusVelocity: 40})

	route, ok := BuildRoute(g, cat.GetStop("S1"), cat.GetStop("S1"))
	require.True(t, ok)
	assert.Equal(t, 0.0, route.TotalTime)
	assert.Empty(t, route.Items)
}

func TestBuildRouteUnreachable(t *testing.T) {
	cat := catalogue.New()
	require.NoError(t, cat.AddStop("Island", geo.Coordinates{Latitude: 1, Longitude: 1}))
	require.NoError(t, cat.AddStop("Mainland", geo.Coordinates{Latitude: 2, Longitude: 2}))

	g := Compile(cat, Settings{BusWaitTime: 6, BusVelocity: 40})
	_, ok := BuildRoute(g, cat.GetStop("Island"), cat.GetStop("Mainland"))
	assert.False(t, ok)
}

func TestCompileCircularClosingEdge(t *testing.T) {
	cat := catalogue.New()
	require.NoError(t, cat.AddStop("X", geo.Coordinates{Latitude: 1, Longitude: 1}))
	require.NoError(t, cat.AddStop("Y", geo.Coordinates{Latitude: 2, Longitude: 2}))
	require.NoError(t, cat.AddStop("Z", geo.Coordinates{Latitude: 3, Longitude: 3}))
	require.NoError(t, cat.SetDistance("X", "Y", 100))
	require.NoError(t, cat.SetDistance("Y", "Z", 200))
	require.NoError(t, cat.SetDistance("Z", "X", 300))
	require.NoError(t, cat.AddBus("C", []string{"X", "Y", "Z"}, true))

	g := Compile(cat, Settings{BusWaitTime: 1, BusVelocity: 60})
	route, ok := BuildRoute(g, cat.GetStop("Z"), cat.GetStop("X"))
	require.True(t, ok)
	// the only ride edge out of Z is the closing edge Z->X (300m at 1000 m/min).
	require.Len(t, route.Items, 2)
	assert.Equal(t, ItemBus, route.Items[1].Kind)
	assert.Equal(t, 1, route.Items[1].Span)
}
