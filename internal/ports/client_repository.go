package ports

import (
	"context"
	"delivery-dispatch-service/internal/domain"
)

// Port: a boundary for retrieving the clients waiting for delivery.
type ClientRepository interface {
	// Retrieve all clients in a stable order; the position in the returned
	// slice is the client's identity for planning.
	ListClients(ctx context.Context) ([]domain.Client, error)
}
