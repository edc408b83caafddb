package model

// CheckoutForm carries the customer fields collected at checkout.
// Only presence is required; phone is optional but checked for shape
// when present.
type CheckoutForm struct {
	CustomerName    string `json:"customer_name" validate:"required"`
	CustomerEmail   string `json:"customer_email" validate:"required"`
	CustomerPhone   string `json:"customer_phone" validate:"omitempty,phone"`
	ShippingAddress string `json:"shipping_address" validate:"required"`
}
