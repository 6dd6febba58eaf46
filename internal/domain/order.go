package domain

import "time"

const OrderStatusPending = "pending"

// Order is the persisted record of a successful checkout. It snapshots the
// cart lines, the form and the computed costs; this package never mutates an
// order after creation.
type Order struct {
	ID          string       `json:"id"`
	Lines       []CartLine   `json:"items"`
	Customer    CheckoutForm `json:"customer"`
	Subtotal    int64        `json:"subtotal"`
	DeliveryFee int64        `json:"shippingCost"`
	Total       int64        `json:"total"`
	Status      string       `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
}
