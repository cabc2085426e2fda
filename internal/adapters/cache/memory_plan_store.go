package cache

import (
	"context"
	"delivery-dispatch-service/internal/domain"
	"delivery-dispatch-service/internal/ports"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// MemoryPlanStore is a process-local PlanStore. It is safe for concurrent use.
type MemoryPlanStore struct {
	mu    sync.RWMutex
	plans map[string]domain.Plan
}

func NewMemoryPlanStore() *MemoryPlanStore {
	return &MemoryPlanStore{plans: make(map[string]domain.Plan)}
}

func (m *MemoryPlanStore) SavePlan(ctx context.Context, plan domain.Plan) error {
	if strings.TrimSpace(plan.ID) == "" {
		return errors.New("save plan: id must not be empty")
	}

	m.mu.Lock()
	m.plans[plan.ID] = plan
	m.mu.Unlock()
	return nil
}

func (m *MemoryPlanStore) GetPlan(ctx context.Context, id string) (domain.Plan, error) {
	m.mu.RLock()
	plan, ok := m.plans[id]
	m.mu.RUnlock()
	if !ok {
		return domain.Plan{}, fmt.Errorf("get plan %q: %w", id, ports.ErrPlanNotFound)
	}
	return plan, nil
}
