package services

import "delivery-dispatch-service/internal/domain"

// Leg is one stop of a route with the distance driven to reach it.
type Leg struct {
	Stop     domain.Client
	Distance float64
}

// RouteSummary describes one trip leg by leg.
type RouteSummary struct {
	Trip          int
	Legs          []Leg
	ReturnLeg     float64
	TotalDistance float64
	TotalLoad     float64
}

// Summary aggregates a schedule for reporting. RemainingRange and
// RemainingCapacity describe the vehicle at the end of the last trip.
type Summary struct {
	Routes            []RouteSummary
	Trips             int
	TotalDistance     float64
	TotalLoad         float64
	ServedClients     int
	TotalClients      int
	RemainingRange    float64
	RemainingCapacity float64
}

// Summarize computes per-leg distances and totals for a planned schedule.
// It only reads the schedule.
func Summarize(schedule domain.Schedule, vehicle domain.Vehicle, depot domain.Point) Summary {
	s := Summary{
		Routes:            make([]RouteSummary, 0, len(schedule.Routes)),
		Trips:             len(schedule.Routes),
		RemainingRange:    vehicle.RangeMax,
		RemainingCapacity: vehicle.CapacityMax,
	}

	for _, r := range schedule.Routes {
		rs := RouteSummary{
			Trip:          r.Trip,
			Legs:          make([]Leg, 0, len(r.Stops)),
			TotalDistance: r.TotalDistance,
			TotalLoad:     r.TotalLoad,
		}

		at := depot
		for _, c := range r.Stops {
			rs.Legs = append(rs.Legs, Leg{Stop: c, Distance: at.DistanceTo(*c.Location)})
			at = *c.Location
		}
		if !r.Empty() {
			rs.ReturnLeg = at.DistanceTo(depot)
		}

		s.Routes = append(s.Routes, rs)
		s.TotalDistance += r.TotalDistance
		s.TotalLoad += r.TotalLoad
		s.ServedClients += len(r.Stops)

		s.RemainingRange = vehicle.RangeMax - r.TotalDistance
		s.RemainingCapacity = vehicle.CapacityMax - r.TotalLoad
	}

	s.TotalClients = s.ServedClients + len(schedule.Unrouted)

	return s
}
