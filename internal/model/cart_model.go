package model

// CartLine is one (jersey, size) entry in a session cart.
// Two lines with the same jersey but different size are distinct.
type CartLine struct {
	JerseyID string  `json:"jerseyid"`
	Name     string  `json:"name"`
	Size     string  `json:"size"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal"`
}

// CartResponse is returned when calling GET /cart
type CartResponse struct {
	SessionID string     `json:"sessionid"`
	Lines     []CartLine `json:"lines"`
	Total     float64    `json:"total"`
	Count     int        `json:"count"`
}
