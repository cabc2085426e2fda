package domain

// Represents one dispatch cycle of the vehicle: depot -> Stops... -> depot.
// Stops are in visit order. TotalDistance includes the return leg and
// TotalLoad is the sum of the stops' demands.
// A Route is immutable once its trip completes; consumers must not mutate it.
type Route struct {
	Trip          int
	Stops         []Client
	TotalDistance float64
	TotalLoad     float64
}

// Empty reports whether the route visits no client.
func (r Route) Empty() bool { return len(r.Stops) == 0 }

// Schedule is the output of a planning run.
// Routes are ordered as the trips were executed. Unrouted holds clients
// that were excluded from planning because their location is unknown.
type Schedule struct {
	Routes   []Route
	Unrouted []Client
}

// ClientCount returns the number of clients served across all routes.
func (s Schedule) ClientCount() int {
	n := 0
	for _, r := range s.Routes {
		n += len(r.Stops)
	}
	return n
}
