package services

import (
	"delivery-dispatch-service/internal/domain"
	"math"
)

// NearestFeasible selects the next client for the vehicle using a greedy
// nearest-neighbor step.
//
// A pending client c is eligible when its demand fits the remaining capacity
// and the vehicle can reach c and still drive straight back to depot:
//
//	dist(current, c) + dist(c, depot) <= remaining range
//
// This lookahead keeps the vehicle from ever being stranded. Among eligible
// clients the one with the strictly smallest dist(current, c) wins; exact
// ties go to the client scanned first. It returns the slot of the chosen
// client in pending and true, or false when no client is eligible.
func NearestFeasible(state domain.VehicleState, pending *PendingSet, depot domain.Point) (int, bool) {
	best := -1
	minDistance := math.Inf(1)

	pending.Each(func(slot int, c domain.Client) {
		if !c.Routable() {
			return
		}

		toClient := state.CurrentLocation.DistanceTo(*c.Location)
		toDepot := c.Location.DistanceTo(depot)

		if !state.CanCarry(c.Demand) || !state.CanTravel(toClient+toDepot) {
			return
		}

		if toClient < minDistance {
			minDistance = toClient
			best = slot
		}
	})

	return best, best >= 0
}
