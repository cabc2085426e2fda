package dto

import "time"

type PointRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type VehicleRequest struct {
	CapacityMax float64 `json:"capacity_max" validate:"gt=0"`
	RangeMax    float64 `json:"range_max" validate:"gt=0"`
}

// PlanRequest asks for a delivery plan. Depot and Vehicle fall back to the
// service defaults; when Clients is omitted the stored clients are planned.
type PlanRequest struct {
	Depot   *PointRequest   `json:"depot"`
	Vehicle *VehicleRequest `json:"vehicle"`
	Clients []ClientRequest `json:"clients" validate:"omitempty,max=10000,dive"`
}

type BatchPlanRequest struct {
	Runs []PlanRequest `json:"runs" validate:"required,min=1,max=50,dive"`
}

type StopResponse struct {
	ClientResponse
	LegDistance float64 `json:"leg_distance"`
}

type RouteResponse struct {
	Trip           int            `json:"trip"`
	Stops          []StopResponse `json:"stops"`
	ReturnDistance float64        `json:"return_distance"`
	TotalDistance  float64        `json:"total_distance"`
	TotalLoad      float64        `json:"total_load"`
}

type SummaryResponse struct {
	Trips             int     `json:"trips"`
	TotalDistance     float64 `json:"total_distance"`
	TotalLoad         float64 `json:"total_load"`
	ServedClients     int     `json:"served_clients"`
	TotalClients      int     `json:"total_clients"`
	RemainingRange    float64 `json:"remaining_range"`
	RemainingCapacity float64 `json:"remaining_capacity"`
}

type PlanResponse struct {
	PlanID    string           `json:"plan_id"`
	CreatedAt time.Time        `json:"created_at"`
	Depot     PointRequest     `json:"depot"`
	Vehicle   VehicleRequest   `json:"vehicle"`
	Routes    []RouteResponse  `json:"routes"`
	Unrouted  []ClientResponse `json:"unrouted"`
	Summary   SummaryResponse  `json:"summary"`
}

type ErrorResponse struct {
	Error       string `json:"error"`
	ClientIndex *int   `json:"client_index,omitempty"`
}

type BatchResult struct {
	Plan  *PlanResponse  `json:"plan,omitempty"`
	Error *ErrorResponse `json:"error,omitempty"`
}

type BatchPlanResponse struct {
	Results []BatchResult `json:"results"`
}
