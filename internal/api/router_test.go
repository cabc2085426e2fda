package api

import (
	"bytes"
	"context"
	"delivery-dispatch-service/internal/adapters/cache"
	"delivery-dispatch-service/internal/adapters/repositories"
	"delivery-dispatch-service/internal/api/handlers"
	"delivery-dispatch-service/internal/domain"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func testDeps() Deps {
	return Deps{
		Repo: repositories.NewMemoryClientRepository([]domain.Client{
			{Location: &domain.Point{X: 5, Y: 5}, Demand: 10, Priority: 10},
			{Location: &domain.Point{X: 15, Y: 8}, Demand: 20, Priority: 9},
			{Location: &domain.Point{X: 30, Y: 25}, Demand: 35, Priority: 5},
		}),
		Store:          cache.NewMemoryPlanStore(),
		DefaultDepot:   domain.Point{},
		DefaultVehicle: domain.Vehicle{CapacityMax: 100, RangeMax: 200},
	}
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) *http.Response {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, r)
	require.NoError(t, err)

	res, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { res.Body.Close() })
	return res
}

func TestRouterPlanRoundTrip(t *testing.T) {
	srv := httptest.NewServer(NewRouter(testDeps()))
	defer srv.Close()

	res := do(t, srv, http.MethodPost, "/plans", `{}`)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotEmpty(t, res.Header.Get(requestIDHeader))

	var created struct {
		PlanID string `json:"plan_id"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&created))
	require.NotEmpty(t, created.PlanID)

	res = do(t, srv, http.MethodGet, "/plans/"+created.PlanID, "")
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res = do(t, srv, http.MethodGet, "/plans/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestRouterRoutes(t *testing.T) {
	deps := testDeps()
	deps.Checks = map[string]handlers.Check{
		"redis": func(ctx context.Context) error { return errors.New("down") },
	}
	srv := httptest.NewServer(NewRouter(deps))
	defer srv.Close()

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/ready", "", http.StatusServiceUnavailable},
		{http.MethodGet, "/clients", "", http.StatusOK},
		{http.MethodGet, "/plans", "", http.StatusMethodNotAllowed},
		{http.MethodPost, "/plans/batch", `{"runs": [{}]}`, http.StatusOK},
		{http.MethodPost, "/plans", `{"clients": [{"x": 1, "y": 1, "demand": 101}]}`, http.StatusUnprocessableEntity},
		{http.MethodGet, "/nowhere", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			res := do(t, srv, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, res.StatusCode)
		})
	}
}

func TestRequestIDIsPropagated(t *testing.T) {
	srv := httptest.NewServer(NewRouter(testDeps()))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set(requestIDHeader, "req-123")

	res, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, "req-123", res.Header.Get(requestIDHeader))
}

func TestRateLimit(t *testing.T) {
	deps := testDeps()
	deps.Limiter = rate.NewLimiter(rate.Limit(0.001), 1)
	srv := httptest.NewServer(NewRouter(deps))
	defer srv.Close()

	assert.Equal(t, http.StatusOK, do(t, srv, http.MethodGet, "/health", "").StatusCode)

	res := do(t, srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusTooManyRequests, res.StatusCode)
	assert.Equal(t, "1", res.Header.Get("Retry-After"))
}

func TestMetricsEndpoint(t *testing.T) {
	srv := httptest.NewServer(NewRouter(testDeps()))
	defer srv.Close()

	require.Equal(t, http.StatusOK, do(t, srv, http.MethodPost, "/plans", `{}`).StatusCode)

	res := do(t, srv, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	text := string(body)
	assert.Contains(t, text, `delivery_plans_total{outcome="ok"}`)
	assert.Contains(t, text, "delivery_plan_trips")
	assert.Contains(t, text, `http_requests_total{method="POST",path="/plans",status="200"}`)
}
