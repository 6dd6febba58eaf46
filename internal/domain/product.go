package domain

import "time"

type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Price         int64     `json:"price"`
	DiscountPrice *int64    `json:"discountPrice,omitempty"`
	Stock         int       `json:"stock"`
	Unit          string    `json:"unit"`
	Description   string    `json:"description,omitempty"`
	IsNewArrival  bool      `json:"isNewArrival"`
	MediaURL      string    `json:"mediaUrl,omitempty"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"reviewCount"`
	Categories    []string  `json:"categoryNames,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// EffectivePrice is the price actually charged: the discounted price when one
// is set, the list price otherwise.
func (p Product) EffectivePrice() int64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}
