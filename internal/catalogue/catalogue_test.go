package catalogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitlab/catalogue/internal/geo"
)

func TestTwoStopLinearRoute(t *testing.T) {
	c := New()
	require.NoError(t, c.AddStop("A", geo.Coordinates{Latitude: 43.587795, Longitude: 39.716901}))
	require.NoError(t, c.AddStop("B", geo.Coordinates{Latitude: 43.581969, Longitude: 39.719848}))
	require.NoError(t, c.SetDistance("A", "B", 850))
	require.NoError(t, c.SetDistance("B", "A", 850))
	require.NoError(t, c.AddBus("114", []string{"A", "B"}, false))

	info, ok := c.GetRouteInfo("114")
	require.True(t, ok)
	assert.Equal(t, 3, info.StopsCount)
	assert.Equal(t, 2, info.UniqueStopsCount)
	assert.Equal(t, 1700.0, info.RouteLength)
	assert.InDelta(t, 1.23199, info.Curvature, 1e-4)
}

func TestStopMembership(t *testing.T) {
	c := New()
	require.NoError(t, c.AddStop("A", geo.Coordinates{Latitude: 43.587795, Longitude: 39.716901}))
	require.NoError(t, c.AddStop("B", geo.Coordinates{Latitude: 43.581969, Longitude: 39.719848}))
	require.NoError(t, c.SetDistance("A", "B", 850))
	require.NoError(t, c.SetDistance("B", "A", 850))
	require.NoError(t, c.AddBus("114", []string{"A", "B"}, false))

	buses := c.GetBusesForStop("A")
	require.Len(t, buses, 1)
	assert.Equal(t, "114", buses[0].Name)

	assert.Nil(t, c.GetStop("Z"))
	assert.Empty(t, c.GetBusesForStop("Z"))
}

func TestCircularThreeStopRoute(t *testing.T) {
	c := New()
	require.NoError(t, c.AddStop("X", geo.Coordinates{Latitude: 43.598, Longitude: 39.730}))
	require.NoError(t, c.AddStop("Y", geo.Coordinates{Latitude: 43.592, Longitude: 39.720}))
	require.NoError(t, c.AddStop("Z", geo.Coordinates{Latitude: 43.585, Longitude: 39.733}))
	require.NoError(t, c.SetDistance("X", "Y", 100))
	require.NoError(t, c.SetDistance("Y", "Z", 200))
	require.NoError(t, c.SetDistance("Z", "X", 300))
	require.NoError(t, c.AddBus("C", []string{"X", "Y", "Z"}, true))

	info, ok := c.GetRouteInfo("C")
	require.True(t, ok)
	assert.Equal(t, 3, info.StopsCount)
	assert.Equal(t, 3, info.UniqueStopsCount)
	assert.Equal(t, 600.0, info.RouteLength)
}

func TestUnknownBusRouteInfo(t *testing.T) {
	c := New()
	_, ok := c.GetRouteInfo("nope")
	assert.False(t, ok)
}

func TestZeroStopBusRouteInfoIsAbsent(t *testing.T) {
	c := New()
	require.NoError(t, c.AddBus("ghost", nil, true))
	_, ok := c.GetRouteInfo("ghost")
	assert.False(t, ok)
}

func TestAddBusDropsUnknownStopNames(t *testing.T) {
	c := New()
	require.NoError(t, c.AddStop("A", geo.Coordinates{Latitude: 1, Longitude: 1}))
	require.NoError(t, c.AddBus("114", []string{"A", "Ghost"}, true))

	bus := c.GetBus("114")
	require.NotNil(t, bus)
	require.Len(t, bus.Stops, 1)
	assert.Equal(t, "A", bus.Stops[0].Name)
}

func TestDuplicateNamesRejected(t *testing.T) {
	c := New()
	require.NoError(t, c.AddStop("A", geo.Coordinates{Latitude: 1, Longitude: 1}))
	assert.ErrorIs(t, c.AddStop("A", geo.Coordinates{Latitude: 2, Longitude: 2}), ErrDuplicateStop)

	require.NoError(t, c.AddBus("114", []string{"A"}, true))
	assert.ErrorIs(t, c.AddBus("114", []string{"A"}, true), ErrDuplicateBus)
}

func TestSetDistanceRejectsUnknownStopsAndNonPositive(t *testing.T) {
	c := New()
	require.NoError(t, c.AddStop("A", geo.Coordinates{Latitude: 1, Longitude: 1}))
	require.NoError(t, c.AddStop("B", geo.Coordinates{Latitude: 2, Longitude: 2}))

	assert.ErrorIs(t, c.SetDistance("A", "Ghost", 10), ErrUnknownStop)
	assert.ErrorIs(t, c.SetDistance("A", "B", 0), ErrInvalidDistance)
	assert.ErrorIs(t, c.SetDistance("A", "B", -5), ErrInvalidDistance)
}

func TestDistanceFallsBackToReversePair(t *testing.T) {
	c := New()
	require.NoError(t, c.AddStop("A", geo.Coordinates{Latitude: 1, Longitude: 1}))
	require.NoError(t, c.AddStop("B", geo.Coordinates{Latitude: 2, Longitude: 2}))
	require.NoError(t, c.SetDistance("A", "B", 500))

	a, b := c.GetStop("A"), c.GetStop("B")
	d, ok := c.GetDistance(b, a)
	require.True(t, ok)
	assert.Equal(t, 500, d)
}
