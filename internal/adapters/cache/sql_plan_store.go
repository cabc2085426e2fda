package cache

import (
	"context"
	"database/sql"
	"delivery-dispatch-service/internal/domain"
	"delivery-dispatch-service/internal/platform/obs"
	"delivery-dispatch-service/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// SQLPlanStore is a SQL-backed PlanStore keeping plans as JSON documents.
type SQLPlanStore struct {
	DB *sql.DB
}

func NewSQLPlanStore(db *sql.DB) *SQLPlanStore {
	return &SQLPlanStore{DB: db}
}

// Store a plan, replacing any plan with the same id.
func (s *SQLPlanStore) SavePlan(ctx context.Context, plan domain.Plan) (err error) {
	defer obs.Time(ctx, "plan.store.SavePlan")(&err)

	if s.DB == nil {
		return errors.New("plan store: db is nil")
	}

	if strings.TrimSpace(plan.ID) == "" {
		return errors.New("save plan: id must not be empty")
	}

	payload, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("save plan %q: marshal: %w", plan.ID, err)
	}

	q := `
	INSERT INTO plans (plan_id, created_at, payload)
	VALUES ($1, $2, $3)
	ON CONFLICT (plan_id) DO UPDATE
	SET created_at = EXCLUDED.created_at,
		payload = EXCLUDED.payload;
	`
	if _, err := s.DB.ExecContext(ctx, q, plan.ID, plan.CreatedAt, payload); err != nil {
		return fmt.Errorf("save plan %q: insert: %w", plan.ID, err)
	}

	return nil
}

// Fetch a stored plan by id.
func (s *SQLPlanStore) GetPlan(ctx context.Context, id string) (_ domain.Plan, err error) {
	defer obs.Time(ctx, "plan.store.GetPlan")(&err)

	if s.DB == nil {
		return domain.Plan{}, errors.New("plan store: db is nil")
	}

	q := `
	SELECT payload
	FROM plans
	WHERE plan_id = $1;
	`

	var payload []byte
	err = s.DB.QueryRowContext(ctx, q, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Plan{}, fmt.Errorf("get plan %q: %w", id, ports.ErrPlanNotFound)
	}
	if err != nil {
		return domain.Plan{}, fmt.Errorf("get plan %q: query plans table: %w", id, err)
	}

	var plan domain.Plan
	if err := json.Unmarshal(payload, &plan); err != nil {
		return domain.Plan{}, fmt.Errorf("get plan %q: decode payload: %w", id, err)
	}

	return plan, nil
}
