package services

import "delivery-dispatch-service/internal/domain"

// PendingSet holds the clients not yet assigned to a completed route.
//
// Clients keep the position they were given at construction; removal only
// clears an active flag, so the scan order of the remaining clients never
// changes and no slice is shifted on each pick.
type PendingSet struct {
	clients []domain.Client
	active  []bool
	size    int
}

func NewPendingSet(clients []domain.Client) *PendingSet {
	active := make([]bool, len(clients))
	for i := range active {
		active[i] = true
	}
	return &PendingSet{clients: clients, active: active, size: len(clients)}
}

// Len returns the number of clients still pending.
func (p *PendingSet) Len() int { return p.size }

// Client returns the client at slot i.
func (p *PendingSet) Client(i int) domain.Client { return p.clients[i] }

// Remove marks slot i as assigned. Removing an already removed slot is a no-op.
func (p *PendingSet) Remove(i int) {
	if !p.active[i] {
		return
	}
	p.active[i] = false
	p.size--
}

// Each calls fn for every pending client in scan order with its slot.
func (p *PendingSet) Each(fn func(slot int, c domain.Client)) {
	for i, c := range p.clients {
		if p.active[i] {
			fn(i, c)
		}
	}
}

// Remaining returns the pending clients in scan order.
func (p *PendingSet) Remaining() []domain.Client {
	out := make([]domain.Client, 0, p.size)
	p.Each(func(_ int, c domain.Client) { out = append(out, c) })
	return out
}
