package domain

import "time"

// CartLine is a snapshot of a product at the moment it was added to the cart.
// Later catalog changes do not retroactively alter existing lines. There is at
// most one line per product; quantity is always >= 1 (a line that would drop
// to zero is removed instead).
type CartLine struct {
	ProductID     string    `json:"productId"`
	Name          string    `json:"name"`
	UnitPrice     int64     `json:"unitPrice"`
	ListPrice     int64     `json:"listPrice"`
	DiscountPrice *int64    `json:"discountPrice,omitempty"`
	MediaURL      string    `json:"mediaUrl,omitempty"`
	Unit          string    `json:"unit"`
	Stock         int       `json:"stock"`
	Quantity      int       `json:"quantity"`
	AddedAt       time.Time `json:"addedAt"`
}

// Total is the line total: effective unit price times quantity.
func (l CartLine) Total() int64 {
	return l.UnitPrice * int64(l.Quantity)
}
