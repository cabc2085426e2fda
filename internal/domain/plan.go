package domain

import "time"

// Plan is a planning run kept for later retrieval: its inputs and the
// resulting schedule.
type Plan struct {
	ID        string
	CreatedAt time.Time
	Depot     Point
	Vehicle   Vehicle
	Schedule  Schedule
}
