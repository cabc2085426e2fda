package services

import (
	"delivery-dispatch-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNearestFeasible(t *testing.T) {
	depot := domain.Point{}
	vehicle := domain.Vehicle{CapacityMax: 50, RangeMax: 100}

	t.Run("picks nearest", func(t *testing.T) {
		pending := NewPendingSet([]domain.Client{
			client(10, 0, 1, 1),
			client(3, 4, 1, 1),
			client(0, 7, 1, 1),
		})
		slot, ok := NearestFeasible(domain.NewVehicleState(vehicle, depot), pending, depot)
		require.True(t, ok)
		require.Equal(t, 1, slot)
	})

	t.Run("ties go to the first scanned", func(t *testing.T) {
		pending := NewPendingSet([]domain.Client{
			client(0, 5, 1, 1),
			client(5, 0, 1, 1),
			client(-5, 0, 1, 1),
		})
		slot, ok := NearestFeasible(domain.NewVehicleState(vehicle, depot), pending, depot)
		require.True(t, ok)
		require.Equal(t, 0, slot)

		pending.Remove(0)
		slot, ok = NearestFeasible(domain.NewVehicleState(vehicle, depot), pending, depot)
		require.True(t, ok)
		require.Equal(t, 1, slot)
	})

	t.Run("skips clients over remaining capacity", func(t *testing.T) {
		state := domain.NewVehicleState(vehicle, depot)
		state.CurrentLoad = 45
		pending := NewPendingSet([]domain.Client{
			client(1, 0, 10, 1),
			client(2, 0, 5, 1),
		})
		slot, ok := NearestFeasible(state, pending, depot)
		require.True(t, ok)
		require.Equal(t, 1, slot)
	})

	t.Run("requires range to come back", func(t *testing.T) {
		state := domain.NewVehicleState(vehicle, depot)
		state.CurrentLocation = domain.Point{X: 10, Y: 0}
		state.RemainingRange = 20
		pending := NewPendingSet([]domain.Client{
			client(0, 10, 1, 1), // 14.14 + 10
			client(15, 0, 1, 1), // 5 + 15
		})
		slot, ok := NearestFeasible(state, pending, depot)
		require.True(t, ok)
		require.Equal(t, 1, slot)
	})

	t.Run("none eligible", func(t *testing.T) {
		state := domain.NewVehicleState(vehicle, depot)
		state.RemainingRange = 1
		pending := NewPendingSet([]domain.Client{client(10, 0, 1, 1), {Location: nil}})
		_, ok := NearestFeasible(state, pending, depot)
		require.False(t, ok)
	})

	t.Run("empty pending", func(t *testing.T) {
		_, ok := NearestFeasible(domain.NewVehicleState(vehicle, depot), NewPendingSet(nil), depot)
		require.False(t, ok)
	})
}
