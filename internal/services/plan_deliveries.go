package services

import (
	"delivery-dispatch-service/internal/domain"
	"fmt"
)

// PlanDeliveries schedules trips of a single vehicle until every client has
// been served.
//
// Clients are identified by their position in the input slice; the Index
// field of each client is overwritten with that position. A nil vehicle, a
// nil depot or an empty client list yields an empty schedule and no error.
//
// The whole input is validated before any trip is planned, so a client that
// no trip could ever serve aborts the run with a feasibility error and no
// partial schedule. Clients with an unknown location are not planned and
// are returned in Schedule.Unrouted.
//
// Trips are then built one after another from a freshly reset vehicle. Each
// trip must serve at least one client: validation guarantees every pending
// client fits an empty vehicle, so a trip without progress means the
// selector and the validator disagree and the run fails with
// domain.ErrInvariantViolation instead of looping or dropping clients.
func PlanDeliveries(
	clients []domain.Client,
	vehicle *domain.Vehicle,
	depot *domain.Point,
) (domain.Schedule, error) {
	if len(clients) == 0 || vehicle == nil || depot == nil {
		return domain.Schedule{Routes: []domain.Route{}, Unrouted: []domain.Client{}}, nil
	}

	if err := vehicle.Validate(); err != nil {
		return domain.Schedule{}, fmt.Errorf("plan deliveries: %w", err)
	}

	clients = domain.IndexClients(clients)

	if err := ValidateFeasibility(clients, *vehicle, *depot); err != nil {
		return domain.Schedule{}, fmt.Errorf("plan deliveries: validate: %w", err)
	}

	routable := make([]domain.Client, 0, len(clients))
	unrouted := []domain.Client{}
	for _, c := range clients {
		if !c.Routable() {
			unrouted = append(unrouted, c)
			continue
		}
		routable = append(routable, c)
	}

	pending := NewPendingSet(SortByPriority(routable))
	state := domain.NewVehicleState(*vehicle, *depot)

	routes := []domain.Route{}
	for pending.Len() > 0 {
		before := pending.Len()

		route, next := BuildTrip(state, pending, *depot)
		if route.Empty() || pending.Len() >= before {
			return domain.Schedule{}, fmt.Errorf(
				"plan deliveries: trip %d: %w: no progress with %d clients pending",
				len(routes)+1, domain.ErrInvariantViolation, pending.Len(),
			)
		}

		route.Trip = len(routes) + 1
		routes = append(routes, route)
		state = next
	}

	return domain.Schedule{Routes: routes, Unrouted: unrouted}, nil
}

// FirstRoute plans deliveries and returns only the first trip, or an empty
// route when nothing was planned. Clients left for later trips are not
// reported; use PlanDeliveries to serve everyone.
func FirstRoute(
	clients []domain.Client,
	vehicle *domain.Vehicle,
	depot *domain.Point,
) (domain.Route, error) {
	schedule, err := PlanDeliveries(clients, vehicle, depot)
	if err != nil {
		return domain.Route{}, fmt.Errorf("first route: %w", err)
	}
	if len(schedule.Routes) == 0 {
		return domain.Route{Stops: []domain.Client{}}, nil
	}
	return schedule.Routes[0], nil
}
