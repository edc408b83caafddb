package model

import "time"

const OrderStatusPending = "pending"

// Order represents an entry in the orders table
type Order struct {
	OrderID         string     `json:"id"`
	CustomerName    string     `json:"customer_name"`
	CustomerEmail   string     `json:"customer_email"`
	CustomerPhone   string     `json:"customer_phone,omitempty"`
	ShippingAddress string     `json:"shipping_address"`
	TotalAmount     float64    `json:"total_amount"`
	Status          string     `json:"status"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
}

// OrderItem represents a row in the order_items table
type OrderItem struct {
	OrderItemID string     `json:"id"`
	OrderID     string     `json:"order_id"`
	JerseyID    string     `json:"jersey_id"`
	Quantity    int        `json:"quantity"`
	Size        string     `json:"size"`
	Price       float64    `json:"price"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// OrderResponse is returned when calling GET /orders/:id
type OrderResponse struct {
	Order Order       `json:"order"`
	Items []OrderItem `json:"items"`
}
