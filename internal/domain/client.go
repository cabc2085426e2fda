package domain

// Represents a delivery client waiting to be served.
// Index is the client's position in the original input and is its identity:
// two clients may carry identical attributes and still be distinct.
// A nil Location marks a client whose position is unknown.
type Client struct {
	Index    int
	Location *Point
	Demand   float64
	Priority int
}

// Routable reports whether the client has a known location.
func (c Client) Routable() bool { return c.Location != nil }

// IndexClients stamps each client with its position in the slice.
func IndexClients(clients []Client) []Client {
	out := make([]Client, len(clients))
	for i, c := range clients {
		c.Index = i
		out[i] = c
	}
	return out
}
