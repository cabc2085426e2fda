package domain

import "fmt"

// Fixed limits of the single delivery vehicle.
type Vehicle struct {
	CapacityMax float64
	RangeMax    float64
}

// Validate checks that both limits are positive. NaN is rejected.
func (v Vehicle) Validate() error {
	if !(v.CapacityMax > 0) {
		return fmt.Errorf("%w: capacity_max=%v", ErrInvalidVehicle, v.CapacityMax)
	}
	if !(v.RangeMax > 0) {
		return fmt.Errorf("%w: range_max=%v", ErrInvalidVehicle, v.RangeMax)
	}
	return nil
}

// VehicleState is the mutable state of the vehicle during one trip.
// It is passed by value into each trip and returned out of it, so no state
// leaks between trips except through an explicit Reset.
type VehicleState struct {
	Vehicle
	CurrentLoad     float64
	RemainingRange  float64
	CurrentLocation Point
}

// NewVehicleState returns the state of v parked empty at depot.
func NewVehicleState(v Vehicle, depot Point) VehicleState {
	return VehicleState{Vehicle: v}.Reset(depot)
}

// Reset returns the state at the start of a trip: empty, full range, at depot.
func (s VehicleState) Reset(depot Point) VehicleState {
	return VehicleState{
		Vehicle:         s.Vehicle,
		CurrentLoad:     0,
		RemainingRange:  s.RangeMax,
		CurrentLocation: depot,
	}
}

// CanCarry reports whether demand still fits in the remaining capacity.
func (s VehicleState) CanCarry(demand float64) bool {
	return s.CurrentLoad+demand <= s.CapacityMax
}

// CanTravel reports whether the remaining range covers distance.
func (s VehicleState) CanTravel(distance float64) bool {
	return distance <= s.RemainingRange
}

// Advance moves the vehicle to c, loading its demand and consuming the leg.
func (s VehicleState) Advance(c Client, leg float64) VehicleState {
	s.CurrentLoad += c.Demand
	s.RemainingRange -= leg
	s.CurrentLocation = *c.Location
	return s
}

// ReturnTo drives the vehicle back to depot over a leg of the given length.
func (s VehicleState) ReturnTo(depot Point, leg float64) VehicleState {
	s.RemainingRange -= leg
	s.CurrentLocation = depot
	return s
}
