package services

import (
	"delivery-dispatch-service/internal/domain"
)

// ValidateFeasibility checks, once and for the whole input, that every client
// can be served by an empty vehicle leaving from depot.
//
// Each client is judged on its own: its demand must fit the vehicle capacity
// and the direct round trip depot -> client -> depot must fit the vehicle range.
// The first violation aborts validation and is returned as an
// *domain.InfeasibleDemandError or *domain.InfeasibleRangeError.
// Clients with an unknown location are skipped.
func ValidateFeasibility(clients []domain.Client, vehicle domain.Vehicle, depot domain.Point) error {
	for _, c := range clients {
		if !c.Routable() {
			continue
		}

		if c.Demand > vehicle.CapacityMax {
			return &domain.InfeasibleDemandError{
				ClientIndex: c.Index,
				Demand:      c.Demand,
				Capacity:    vehicle.CapacityMax,
			}
		}

		oneWay := depot.DistanceTo(*c.Location)
		if 2*oneWay > vehicle.RangeMax {
			return &domain.InfeasibleRangeError{
				ClientIndex: c.Index,
				Location:    *c.Location,
				Distance:    oneWay,
				RoundTrip:   2 * oneWay,
				RangeMax:    vehicle.RangeMax,
			}
		}
	}

	return nil
}
