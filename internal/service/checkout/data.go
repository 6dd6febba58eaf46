package checkout

import "apotek-storefront/internal/domain"

// Serviced areas with their regular and express shipping fees. Static
// reference data, not user-mutable.
var Areas = []domain.DeliveryArea{
	{Name: "Krandegan", RegularCost: 0, ExpressCost: 5000},
	{Name: "Sukorame", RegularCost: 5000, ExpressCost: 7000},
	{Name: "Melis", RegularCost: 5000, ExpressCost: 8000},
	{Name: "Karanganyar", RegularCost: 8000, ExpressCost: 10000},
	{Name: "Widoro", RegularCost: 8000, ExpressCost: 12000},
	{Name: "Ngadirenggo", RegularCost: 10000, ExpressCost: 15000},
	{Name: "Ngetal", RegularCost: 10000, ExpressCost: 15000},
	{Name: "Wonocoyo", RegularCost: 12000, ExpressCost: 18000},
	{Name: "Bendorejo", RegularCost: 12000, ExpressCost: 20000},
}

// Delivery-speed options. Available on the express entry is the global
// kill switch: flipping it to false disables express for every area.
var DeliveryOptions = []domain.DeliveryOption{
	{ID: domain.DeliveryRegular, Name: "Regular", Description: "Pengiriman standar", Available: true},
	{ID: domain.DeliveryExpress, Name: "Secepatnya", Description: "Prioritas pengiriman cepat", Available: true},
}

var PaymentMethods = []domain.PaymentMethod{
	{ID: "cod", Name: "Bayar di Tempat (COD)", Description: "Bayar saat barang diterima"},
	{ID: "transfer", Name: "Transfer Bank", Description: "Transfer ke rekening apotek"},
}

// AreaByName looks up a serviced area.
func AreaByName(areas []domain.DeliveryArea, name string) (domain.DeliveryArea, bool) {
	for _, a := range areas {
		if a.Name == name {
			return a, true
		}
	}
	return domain.DeliveryArea{}, false
}

// DeliveryOptionByID looks up a delivery-speed option.
func DeliveryOptionByID(options []domain.DeliveryOption, id string) (domain.DeliveryOption, bool) {
	for _, o := range options {
		if o.ID == id {
			return o, true
		}
	}
	return domain.DeliveryOption{}, false
}

// PaymentMethodByID looks up a payment method.
func PaymentMethodByID(id string) (domain.PaymentMethod, bool) {
	for _, m := range PaymentMethods {
		if m.ID == id {
			return m, true
		}
	}
	return domain.PaymentMethod{}, false
}
