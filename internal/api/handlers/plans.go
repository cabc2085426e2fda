package handlers

import (
	"context"
	"delivery-dispatch-service/internal/api/dto"
	"delivery-dispatch-service/internal/domain"
	"delivery-dispatch-service/internal/platform/metrics"
	"delivery-dispatch-service/internal/platform/obs"
	"delivery-dispatch-service/internal/ports"
	"delivery-dispatch-service/internal/services"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PlanDefaults fill in a plan request's missing depot and vehicle.
type PlanDefaults struct {
	Depot   domain.Point
	Vehicle domain.Vehicle
}

type PlanHandler struct {
	Repo     ports.ClientRepository
	Store    ports.PlanStore
	Defaults PlanDefaults
	Now      func() time.Time
}

// Plan computes the trips that serve every client and stores the result.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.PlanRequest
	if !decodeBody(w, r, &req) {
		return
	}

	run, err := h.buildRun(r.Context(), req)
	if err != nil {
		log.Printf("plan deliveries failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	plan, err := h.plan(r.Context(), run)
	if err != nil {
		status, res := planErrorResponse(err)
		writeJSON(w, r, status, res)
		return
	}

	writeJSON(w, r, http.StatusOK, toPlanResponse(plan))
}

// Get returns a previously computed plan.
func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		writeError(w, r, http.StatusBadRequest, "plan id is required")
		return
	}

	plan, err := h.Store.GetPlan(r.Context(), id)
	if errors.Is(err, ports.ErrPlanNotFound) {
		writeError(w, r, http.StatusNotFound, "plan not found")
		return
	}
	if err != nil {
		log.Printf("get plan failed: plan_id=%s err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toPlanResponse(plan))
}

// Batch plans independent runs concurrently. A failing run is reported in
// its own result and does not fail the request.
func (h *PlanHandler) Batch(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.BatchPlanRequest
	if !decodeBody(w, r, &req) {
		return
	}

	runs := make([]services.PlanRun, 0, len(req.Runs))
	for _, pr := range req.Runs {
		run, err := h.buildRun(r.Context(), pr)
		if err != nil {
			log.Printf("batch plan failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		runs = append(runs, run)
	}

	start := time.Now()
	results, err := services.PlanBatch(r.Context(), runs)
	if err != nil {
		log.Printf("batch plan aborted: runs=%d err=%v", len(runs), err)
		writeError(w, r, http.StatusServiceUnavailable, "request cancelled")
		return
	}

	res := dto.BatchPlanResponse{Results: make([]dto.BatchResult, 0, len(results))}
	for i, result := range results {
		recordPlan(result.Schedule, result.Err, 0)
		if result.Err != nil {
			_, e := planErrorResponse(result.Err)
			res.Results = append(res.Results, dto.BatchResult{Error: &e})
			continue
		}

		plan := h.newPlan(runs[i], result.Schedule)
		h.save(r.Context(), plan)
		pr := toPlanResponse(plan)
		res.Results = append(res.Results, dto.BatchResult{Plan: &pr})
	}
	log.Printf("req_id=%s batch runs=%d dur=%dms", obs.RequestID(r.Context()), len(runs), time.Since(start).Milliseconds())

	writeJSON(w, r, http.StatusOK, res)
}

// buildRun resolves a request into planning input, loading stored clients
// when the request carries none.
func (h *PlanHandler) buildRun(ctx context.Context, req dto.PlanRequest) (services.PlanRun, error) {
	depot := h.Defaults.Depot
	if req.Depot != nil {
		depot = domain.Point{X: req.Depot.X, Y: req.Depot.Y}
	}

	vehicle := h.Defaults.Vehicle
	if req.Vehicle != nil {
		vehicle = domain.Vehicle{CapacityMax: req.Vehicle.CapacityMax, RangeMax: req.Vehicle.RangeMax}
	}

	var clients []domain.Client
	if req.Clients == nil {
		stored, err := h.Repo.ListClients(ctx)
		if err != nil {
			return services.PlanRun{}, fmt.Errorf("build plan run: list clients: %w", err)
		}
		clients = stored
	} else {
		clients = make([]domain.Client, 0, len(req.Clients))
		for i, c := range req.Clients {
			client := domain.Client{Index: i, Demand: c.Demand, Priority: c.Priority}
			if c.X != nil && c.Y != nil {
				client.Location = &domain.Point{X: *c.X, Y: *c.Y}
			}
			clients = append(clients, client)
		}
	}

	return services.PlanRun{Clients: clients, Vehicle: &vehicle, Depot: &depot}, nil
}

func (h *PlanHandler) plan(ctx context.Context, run services.PlanRun) (_ domain.Plan, err error) {
	defer obs.Time(ctx, "services.PlanDeliveries")(&err)

	start := time.Now()
	schedule, err := services.PlanDeliveries(run.Clients, run.Vehicle, run.Depot)
	recordPlan(schedule, err, time.Since(start))
	if err != nil {
		return domain.Plan{}, err
	}

	plan := h.newPlan(run, schedule)
	h.save(ctx, plan)

	log.Printf(
		"req_id=%s plan_id=%s clients=%d trips=%d unrouted=%d",
		obs.RequestID(ctx), plan.ID, len(run.Clients), len(schedule.Routes), len(schedule.Unrouted),
	)

	return plan, nil
}

func (h *PlanHandler) newPlan(run services.PlanRun, schedule domain.Schedule) domain.Plan {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	return domain.Plan{
		ID:        uuid.NewString(),
		CreatedAt: now().UTC(),
		Depot:     *run.Depot,
		Vehicle:   *run.Vehicle,
		Schedule:  schedule,
	}
}

// save stores the plan; a store failure is logged and the plan is still
// returned to the caller.
func (h *PlanHandler) save(ctx context.Context, plan domain.Plan) {
	if h.Store == nil {
		return
	}
	if err := h.Store.SavePlan(ctx, plan); err != nil {
		log.Printf("plan store write failed: plan_id=%s err=%v", plan.ID, err)
	}
}

func recordPlan(schedule domain.Schedule, err error, dur time.Duration) {
	if dur > 0 {
		metrics.PlanDuration.Observe(dur.Seconds())
	}

	switch {
	case err == nil:
		metrics.PlansTotal.WithLabelValues("ok").Inc()
		metrics.TripsPerPlan.Observe(float64(len(schedule.Routes)))
	case errors.Is(err, domain.ErrInfeasibleDemand):
		metrics.PlansTotal.WithLabelValues("infeasible_demand").Inc()
	case errors.Is(err, domain.ErrInfeasibleRange):
		metrics.PlansTotal.WithLabelValues("infeasible_range").Inc()
	case errors.Is(err, domain.ErrInvalidVehicle):
		metrics.PlansTotal.WithLabelValues("invalid").Inc()
	case errors.Is(err, domain.ErrInvariantViolation):
		metrics.PlansTotal.WithLabelValues("invariant_violation").Inc()
	default:
		metrics.PlansTotal.WithLabelValues("error").Inc()
	}
}

// planErrorResponse maps a planning error to a status and body.
func planErrorResponse(err error) (int, dto.ErrorResponse) {
	switch {
	case errors.Is(err, domain.ErrInfeasibleDemand), errors.Is(err, domain.ErrInfeasibleRange):
		res := dto.ErrorResponse{Error: err.Error()}
		if idx, ok := domain.ClientIndexOf(err); ok {
			res.ClientIndex = &idx
		}
		return http.StatusUnprocessableEntity, res
	case errors.Is(err, domain.ErrInvalidVehicle):
		return http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()}
	default:
		log.Printf("plan deliveries failed: %v", err)
		return http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"}
	}
}

func toPlanResponse(p domain.Plan) dto.PlanResponse {
	summary := services.Summarize(p.Schedule, p.Vehicle, p.Depot)

	res := dto.PlanResponse{
		PlanID:    p.ID,
		CreatedAt: p.CreatedAt,
		Depot:     dto.PointRequest{X: p.Depot.X, Y: p.Depot.Y},
		Vehicle:   dto.VehicleRequest{CapacityMax: p.Vehicle.CapacityMax, RangeMax: p.Vehicle.RangeMax},
		Routes:    make([]dto.RouteResponse, 0, len(summary.Routes)),
		Unrouted:  make([]dto.ClientResponse, 0, len(p.Schedule.Unrouted)),
		Summary: dto.SummaryResponse{
			Trips:             summary.Trips,
			TotalDistance:     summary.TotalDistance,
			TotalLoad:         summary.TotalLoad,
			ServedClients:     summary.ServedClients,
			TotalClients:      summary.TotalClients,
			RemainingRange:    summary.RemainingRange,
			RemainingCapacity: summary.RemainingCapacity,
		},
	}

	for _, rs := range summary.Routes {
		stops := make([]dto.StopResponse, 0, len(rs.Legs))
		for _, leg := range rs.Legs {
			stops = append(stops, dto.StopResponse{
				ClientResponse: toClientResponse(leg.Stop),
				LegDistance:    leg.Distance,
			})
		}

		res.Routes = append(res.Routes, dto.RouteResponse{
			Trip:           rs.Trip,
			Stops:          stops,
			ReturnDistance: rs.ReturnLeg,
			TotalDistance:  rs.TotalDistance,
			TotalLoad:      rs.TotalLoad,
		})
	}

	for _, c := range p.Schedule.Unrouted {
		res.Unrouted = append(res.Unrouted, toClientResponse(c))
	}

	return res
}
