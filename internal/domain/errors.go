package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPoint       = errors.New("invalid point: location is undefined")
	ErrInvalidVehicle     = errors.New("invalid vehicle: capacity and range must be positive")
	ErrInfeasibleDemand   = errors.New("infeasible demand")
	ErrInfeasibleRange    = errors.New("infeasible range")
	ErrInvariantViolation = errors.New("internal invariant violation")
)

// InfeasibleDemandError reports a client whose demand exceeds the capacity
// of an empty vehicle.
type InfeasibleDemandError struct {
	ClientIndex int
	Demand      float64
	Capacity    float64
}

func (e *InfeasibleDemandError) Error() string {
	return fmt.Sprintf(
		"client %d: demand %.2f exceeds vehicle capacity %.2f",
		e.ClientIndex, e.Demand, e.Capacity,
	)
}

func (e *InfeasibleDemandError) Unwrap() error { return ErrInfeasibleDemand }

// InfeasibleRangeError reports a client that cannot be reached and left
// again on a direct depot round trip.
type InfeasibleRangeError struct {
	ClientIndex int
	Location    Point
	Distance    float64
	RoundTrip   float64
	RangeMax    float64
}

func (e *InfeasibleRangeError) Error() string {
	return fmt.Sprintf(
		"client %d at (%.2f, %.2f): %.2f from depot, round trip %.2f exceeds vehicle range %.2f",
		e.ClientIndex, e.Location.X, e.Location.Y, e.Distance, e.RoundTrip, e.RangeMax,
	)
}

func (e *InfeasibleRangeError) Unwrap() error { return ErrInfeasibleRange }

// ClientIndexOf extracts the offending client index from a feasibility error.
func ClientIndexOf(err error) (int, bool) {
	var de *InfeasibleDemandError
	if errors.As(err, &de) {
		return de.ClientIndex, true
	}
	var re *InfeasibleRangeError
	if errors.As(err, &re) {
		return re.ClientIndex, true
	}
	return 0, false
}
