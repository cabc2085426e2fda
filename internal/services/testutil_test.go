package services

import (
	"delivery-dispatch-service/internal/domain"
	"math"
	"math/rand"
)

func client(x, y, demand float64, priority int) domain.Client {
	return domain.Client{Location: &domain.Point{X: x, Y: y}, Demand: demand, Priority: priority}
}

func stopIndexes(r domain.Route) []int {
	out := make([]int, 0, len(r.Stops))
	for _, s := range r.Stops {
		out = append(out, s.Index)
	}
	return out
}

func newSeededRand() *rand.Rand { return rand.New(rand.NewSource(42)) }

// routeLength recomputes depot -> stops -> depot for a route.
func routeLength(r domain.Route, depot domain.Point) float64 {
	total := 0.0
	at := depot
	for _, s := range r.Stops {
		total += at.DistanceTo(*s.Location)
		at = *s.Location
	}
	return total + at.DistanceTo(depot)
}

// randomClients scatters n clients in a disc of the given radius around the
// origin with demands in [10, 50) and priorities in [1, 10].
func randomClients(rng *rand.Rand, n int, radius float64) []domain.Client {
	clients := make([]domain.Client, 0, n)
	for i := 0; i < n; i++ {
		angle := rng.Float64() * 2 * math.Pi
		r := rng.Float64() * radius
		clients = append(clients, client(
			r*math.Cos(angle),
			r*math.Sin(angle),
			10+rng.Float64()*40,
			1+rng.Intn(10),
		))
	}
	return clients
}
