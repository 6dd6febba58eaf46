// Package pricing holds the money helpers shared by cart, checkout and order
// rendering. Amounts are whole rupiah stored as int64.
package pricing

import "strconv"

// FormatRupiah renders an amount the way the storefront displays prices,
// e.g. 10000 -> "Rp10.000".
func FormatRupiah(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}

	s := "Rp" + string(out)
	if neg {
		s = "-" + s
	}
	return s
}

// LineTotal multiplies a unit price by a quantity.
func LineTotal(unitPrice int64, quantity int) int64 {
	return unitPrice * int64(quantity)
}
