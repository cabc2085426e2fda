package handlers

import (
	"delivery-dispatch-service/internal/api/dto"
	"delivery-dispatch-service/internal/domain"
	"delivery-dispatch-service/internal/ports"
	"log"
	"net/http"
)

// ClientHandler exposes read-only client retrieval endpoints.
type ClientHandler struct {
	Repo ports.ClientRepository
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	clients, err := h.Repo.ListClients(r.Context())
	if err != nil {
		log.Printf("list clients failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListClientsResponse{
		Clients: make([]dto.ClientResponse, 0, len(clients)),
	}
	for _, c := range clients {
		res.Clients = append(res.Clients, toClientResponse(c))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toClientResponse(c domain.Client) dto.ClientResponse {
	res := dto.ClientResponse{Index: c.Index, Demand: c.Demand, Priority: c.Priority}
	if c.Location != nil {
		x, y := c.Location.X, c.Location.Y
		res.X, res.Y = &x, &y
	}
	return res
}
