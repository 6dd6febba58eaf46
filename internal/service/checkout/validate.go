package checkout

import (
	"strings"

	"apotek-storefront/internal/domain"
)

// ValidateForm checks the submission preconditions. It returns nil when the
// form may be composed into an order.
func ValidateForm(areas []domain.DeliveryArea, form domain.CheckoutForm) domain.FieldErrors {
	errs := domain.FieldErrors{}

	if strings.TrimSpace(form.Name) == "" {
		errs["name"] = "Nama wajib diisi"
	}

	if form.Area == "" {
		errs["area"] = "Pilih daerah tujuan"
	} else if _, ok := AreaByName(areas, form.Area); !ok {
		errs["area"] = "Daerah tidak terjangkau"
	}

	if form.DeliveryTime == "" {
		errs["deliveryTime"] = "Pilih waktu pengiriman"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
