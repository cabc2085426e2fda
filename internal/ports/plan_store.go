package ports

import (
	"context"
	"delivery-dispatch-service/internal/domain"
	"errors"
)

// ErrPlanNotFound is returned when a plan id is unknown or has expired.
var ErrPlanNotFound = errors.New("plan not found")

// Port: storage for computed plans so they can be fetched again by id.
type PlanStore interface {
	SavePlan(ctx context.Context, plan domain.Plan) error
	// Return ErrPlanNotFound when no plan is stored under id.
	GetPlan(ctx context.Context, id string) (domain.Plan, error)
}
