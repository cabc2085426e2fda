package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleValidate(t *testing.T) {
	require.NoError(t, Vehicle{CapacityMax: 100, RangeMax: 200}.Validate())
	require.NoError(t, Vehicle{CapacityMax: math.Inf(1), RangeMax: math.Inf(1)}.Validate())

	bad := []Vehicle{
		{CapacityMax: 0, RangeMax: 10},
		{CapacityMax: 10, RangeMax: 0},
		{CapacityMax: -1, RangeMax: 10},
		{CapacityMax: math.NaN(), RangeMax: 10},
		{CapacityMax: 10, RangeMax: math.NaN()},
	}
	for _, v := range bad {
		assert.ErrorIs(t, v.Validate(), ErrInvalidVehicle, "vehicle %+v", v)
	}
}

func TestVehicleStateReset(t *testing.T) {
	depot := Point{X: 1, Y: 2}
	v := Vehicle{CapacityMax: 50, RangeMax: 80}

	s := NewVehicleState(v, depot)
	s = s.Advance(Client{Location: &Point{X: 4, Y: 6}, Demand: 20}, 5)

	require.Equal(t, 20.0, s.CurrentLoad)
	require.Equal(t, 75.0, s.RemainingRange)
	require.Equal(t, Point{X: 4, Y: 6}, s.CurrentLocation)

	reset := s.Reset(depot)
	require.Equal(t, 0.0, reset.CurrentLoad)
	require.Equal(t, 80.0, reset.RemainingRange)
	require.Equal(t, depot, reset.CurrentLocation)
	require.Equal(t, v, reset.Vehicle)

	// the advanced state is a separate value
	require.Equal(t, 20.0, s.CurrentLoad)
}

func TestVehicleStateLimits(t *testing.T) {
	s := NewVehicleState(Vehicle{CapacityMax: 10, RangeMax: 10}, Point{})

	assert.True(t, s.CanCarry(10))
	assert.False(t, s.CanCarry(10.0001))
	assert.True(t, s.CanTravel(10))
	assert.False(t, s.CanTravel(10.0001))

	s = s.ReturnTo(Point{}, 4)
	assert.Equal(t, 6.0, s.RemainingRange)
}
