// Package checkout covers everything between the cart and the order: serviced
// areas, delivery fee resolution, form validation and the recency history that
// pre-populates the form.
package checkout

import "apotek-storefront/internal/domain"

// Quote is the resolved delivery cost for an area and delivery-speed choice.
type Quote struct {
	Area           *domain.DeliveryArea `json:"area,omitempty"`
	DeliveryOption string               `json:"deliveryOption"`
	Fee            int64                `json:"fee"`
}

// Resolve computes the fee to charge. Express replaces the regular fee, it is
// never additive. A selection of express while the option is globally
// unavailable is coerced back to regular rather than silently charged at
// express rates. An unknown area quotes a zero fee.
func Resolve(areas []domain.DeliveryArea, options []domain.DeliveryOption, areaName, optionID string) Quote {
	if optionID == "" {
		optionID = domain.DeliveryRegular
	}
	if optionID == domain.DeliveryExpress {
		express, ok := DeliveryOptionByID(options, domain.DeliveryExpress)
		if !ok || !express.Available {
			optionID = domain.DeliveryRegular
		}
	}

	area, ok := AreaByName(areas, areaName)
	if !ok {
		return Quote{DeliveryOption: optionID, Fee: 0}
	}

	fee := area.RegularCost
	if optionID == domain.DeliveryExpress {
		fee = area.ExpressCost
	}
	return Quote{Area: &area, DeliveryOption: optionID, Fee: fee}
}

// ResolveDefault resolves against the built-in reference data.
func ResolveDefault(areaName, optionID string) Quote {
	return Resolve(Areas, DeliveryOptions, areaName, optionID)
}
