package services

import (
	"delivery-dispatch-service/internal/domain"
	"slices"
)

// SortByPriority returns a copy of clients ordered by priority, highest first.
//
// The sort is stable, so clients with equal priority keep their input order
// and repeated runs over the same input produce the same ordering. The order
// only seeds the candidate scan of the nearest-feasible selector; it breaks
// exact distance ties and never overrides a strictly nearer client.
func SortByPriority(clients []domain.Client) []domain.Client {
	out := slices.Clone(clients)
	slices.SortStableFunc(out, func(a, b domain.Client) int {
		switch {
		case a.Priority > b.Priority:
			return -1
		case a.Priority < b.Priority:
			return 1
		default:
			return 0
		}
	})
	return out
}
