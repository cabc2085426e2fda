package repositories

import (
	"context"
	"delivery-dispatch-service/internal/domain"
	"slices"
)

// In-memory ClientRepository used when no database is configured.
type MemoryClientRepository struct {
	clients []domain.Client
}

func NewMemoryClientRepository(clients []domain.Client) *MemoryClientRepository {
	return &MemoryClientRepository{clients: domain.IndexClients(clients)}
}

func (m *MemoryClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	return slices.Clone(m.clients), nil
}
