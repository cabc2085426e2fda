package repositories

import (
	"context"
	"database/sql"
	"delivery-dispatch-service/internal/domain"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ClientSeed is one client entry of a seed file. X and Y are both set or
// both omitted; an omitted pair seeds a client with unknown location.
type ClientSeed struct {
	X        *float64 `json:"x" yaml:"x"`
	Y        *float64 `json:"y" yaml:"y"`
	Demand   float64  `json:"demand" yaml:"demand"`
	Priority int      `json:"priority" yaml:"priority"`
}

// LoadSeedFile reads clients from a JSON or YAML file, chosen by extension.
func LoadSeedFile(path string) ([]domain.Client, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load seed: read %q: %w", path, err)
	}

	var data []ClientSeed
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(bytes, &data); err != nil {
			return nil, fmt.Errorf("load seed: parse yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(bytes, &data); err != nil {
			return nil, fmt.Errorf("load seed: parse json: %w", err)
		}
	}

	clients := make([]domain.Client, 0, len(data))
	for i, item := range data {
		c, err := item.toClient()
		if err != nil {
			return nil, fmt.Errorf("load seed: item at index %d: %w", i+1, err)
		}
		c.Index = i
		clients = append(clients, c)
	}

	return clients, nil
}

func (s ClientSeed) toClient() (domain.Client, error) {
	if (s.X == nil) != (s.Y == nil) {
		return domain.Client{}, errors.New("x and y must be set together")
	}
	if s.Demand < 0 || math.IsNaN(s.Demand) || math.IsInf(s.Demand, 0) {
		return domain.Client{}, fmt.Errorf("invalid demand %v", s.Demand)
	}

	c := domain.Client{Demand: s.Demand, Priority: s.Priority}
	if s.X != nil {
		c.Location = &domain.Point{X: *s.X, Y: *s.Y}
	}
	return c, nil
}

// Populate the clients table from a seed file. Existing clients are
// replaced so the table mirrors the file.
func SeedFromFile(ctx context.Context, db *sql.DB, path string) error {
	clients, err := LoadSeedFile(path)
	if err != nil {
		return fmt.Errorf("seed clients: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed clients: begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `TRUNCATE clients RESTART IDENTITY;`); err != nil {
		return fmt.Errorf("seed clients: truncate: %w", err)
	}

	query := `
	INSERT INTO clients (
		x,
		y,
		demand,
		priority
	)
	VALUES ($1, $2, $3, $4);
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed clients: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range clients {
		var x, y sql.NullFloat64
		if c.Location != nil {
			x = sql.NullFloat64{Float64: c.Location.X, Valid: true}
			y = sql.NullFloat64{Float64: c.Location.Y, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, x, y, c.Demand, c.Priority); err != nil {
			return fmt.Errorf("seed clients: insert client %d: %w", c.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed clients: commit tx: %w", err)
	}

	return nil
}
