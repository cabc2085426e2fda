package services

import (
	"context"
	"delivery-dispatch-service/internal/domain"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentRuns bounds the number of planning runs executed at once.
const maxConcurrentRuns = 5

// PlanRun is one independent planning problem.
type PlanRun struct {
	Clients []domain.Client
	Vehicle *domain.Vehicle
	Depot   *domain.Point
}

// PlanResult is the outcome of one PlanRun. Err holds the run's own failure;
// a failing run does not affect the others.
type PlanResult struct {
	Schedule domain.Schedule
	Err      error
}

// PlanBatch plans independent runs concurrently and returns their results in
// input order.
//
// Runs share no mutable state: each gets its own copy of the client slice,
// pending set and vehicle state. Parallelism is only across runs; a single
// run stays sequential. The returned error is non-nil only when ctx is
// cancelled, in which case runs that had not started carry ctx's error.
func PlanBatch(ctx context.Context, runs []PlanRun) ([]PlanResult, error) {
	results := make([]PlanResult, len(runs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRuns)

	for i, run := range runs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = PlanResult{Err: err}
				return nil
			}

			clients := append([]domain.Client(nil), run.Clients...)
			schedule, err := PlanDeliveries(clients, run.Vehicle, run.Depot)
			results[i] = PlanResult{Schedule: schedule, Err: err}
			return nil
		})
	}

	_ = g.Wait()

	return results, ctx.Err()
}
