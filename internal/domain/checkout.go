package domain

// Delivery option identifiers. Express ("secepatnya") replaces the regular
// shipping fee, it is never added on top of it.
const (
	DeliveryRegular = "regular"
	DeliveryExpress = "secepatnya"
)

// DeliveryArea is static reference data: a serviced area with its regular and
// express shipping fees.
type DeliveryArea struct {
	Name        string `json:"name"`
	RegularCost int64  `json:"cost"`
	ExpressCost int64  `json:"expressCost"`
}

// DeliveryOption is a delivery-speed choice. Available is a global toggle
// independent of the selected area.
type DeliveryOption struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

type PaymentMethod struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CheckoutForm holds the customer input for the duration of checkout.
type CheckoutForm struct {
	Name          string `json:"name"`
	Area          string `json:"area"`
	DeliveryTime  string `json:"deliveryTime"`
	Notes         string `json:"notes"`
	PaymentMethod string `json:"paymentMethod"`
}
