package repositories

import (
	"context"
	"database/sql"
	"delivery-dispatch-service/internal/domain"
	"errors"
	"fmt"
)

// Postgres-backed implementation of the ClientRepository port.
type PostgresClientRepository struct{ DB *sql.DB }

func NewPostgresClientRepository(db *sql.DB) *PostgresClientRepository {
	return &PostgresClientRepository{DB: db}
}

// Return all clients ordered by client_id.
func (p *PostgresClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	if p.DB == nil {
		return nil, errors.New("postgres client repository: DB is nil")
	}

	query := `
	SELECT
		x,
		y,
		demand,
		priority
	FROM clients
	ORDER BY client_id;
	`
	rows, err := p.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list clients: query clients table: %w", err)
	}
	defer rows.Close()

	clients := make([]domain.Client, 0, 64)
	for rows.Next() {
		var x, y sql.NullFloat64
		var demand float64
		var priority int
		if err := rows.Scan(&x, &y, &demand, &priority); err != nil {
			return nil, fmt.Errorf("list clients: scan row: %w", err)
		}

		c := domain.Client{Index: len(clients), Demand: demand, Priority: priority}
		if x.Valid && y.Valid {
			c.Location = &domain.Point{X: x.Float64, Y: y.Float64}
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list clients: row iteration: %w", err)
	}

	return clients, nil
}
