package dto

// ClientRequest is one client of a plan request. X and Y are both given or
// both omitted; omitted coordinates mark a client with unknown location.
type ClientRequest struct {
	X        *float64 `json:"x" validate:"required_with=Y"`
	Y        *float64 `json:"y" validate:"required_with=X"`
	Demand   float64  `json:"demand" validate:"gte=0"`
	Priority int      `json:"priority"`
}

type ClientResponse struct {
	Index    int      `json:"index"`
	X        *float64 `json:"x,omitempty"`
	Y        *float64 `json:"y,omitempty"`
	Demand   float64  `json:"demand"`
	Priority int      `json:"priority"`
}

type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}
