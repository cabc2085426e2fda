package services

import (
	"delivery-dispatch-service/internal/domain"
)

// BuildTrip plans one trip of the vehicle.
//
// The state is reset to an empty vehicle at depot, then the nearest feasible
// client is repeatedly appended to the route and removed from pending until
// none remains eligible. A non-empty route is closed with the return leg to
// depot. The final vehicle state is returned next to the route so callers
// can inspect the remaining range and load of the trip.
//
// An empty route means no pending client fit an empty vehicle; deciding
// whether that is an error is left to the caller.
func BuildTrip(
	state domain.VehicleState,
	pending *PendingSet,
	depot domain.Point,
) (domain.Route, domain.VehicleState) {
	state = state.Reset(depot)
	route := domain.Route{Stops: []domain.Client{}}

	for pending.Len() > 0 {
		slot, ok := NearestFeasible(state, pending, depot)
		if !ok {
			break
		}
		next := pending.Client(slot)

		leg := state.CurrentLocation.DistanceTo(*next.Location)

		route.Stops = append(route.Stops, next)
		route.TotalLoad += next.Demand
		route.TotalDistance += leg
		state = state.Advance(next, leg)

		pending.Remove(slot)
	}

	if route.Empty() {
		return route, state
	}

	back := state.CurrentLocation.DistanceTo(depot)
	route.TotalDistance += back
	state = state.ReturnTo(depot, back)

	return route, state
}
