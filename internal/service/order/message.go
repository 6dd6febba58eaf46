package order

import (
	"fmt"
	"strings"

	"apotek-storefront/internal/domain"
	"apotek-storefront/internal/pricing"
	"apotek-storefront/internal/service/checkout"
)

// renderMessage builds the deterministic order summary sent to the shop's
// WhatsApp contact.
func renderMessage(storeName string, ord domain.Order, options []domain.DeliveryOption) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*PESANAN BARU - %s*\n\n", storeName)
	b.WriteString("*Detail Pesanan:*\n")
	fmt.Fprintf(&b, "Order ID: %s\n", ord.ID)
	fmt.Fprintf(&b, "Tanggal: %s\n\n", ord.CreatedAt.Format("2/1/2006"))

	b.WriteString("*Pelanggan:*\n")
	fmt.Fprintf(&b, "Nama: %s\n", ord.Customer.Name)
	fmt.Fprintf(&b, "Daerah: %s\n", ord.Customer.Area)
	fmt.Fprintf(&b, "Waktu Pengiriman: %s\n", deliveryLabel(options, ord.Customer.DeliveryTime))
	if ord.Customer.Notes != "" {
		fmt.Fprintf(&b, "Catatan: %s\n", ord.Customer.Notes)
	}

	b.WriteString("\n*Produk yang dipesan:*\n")
	for _, line := range ord.Lines {
		fmt.Fprintf(&b, "• %s (%dx) - %s\n", line.Name, line.Quantity, pricing.FormatRupiah(line.Total()))
	}

	b.WriteString("\n*Ringkasan:*\n")
	fmt.Fprintf(&b, "Subtotal: %s\n", pricing.FormatRupiah(ord.Subtotal))
	fmt.Fprintf(&b, "%s: %s\n", feeLabel(ord.Customer.DeliveryTime), feeValue(ord.DeliveryFee))
	fmt.Fprintf(&b, "Total: %s\n\n", pricing.FormatRupiah(ord.Total))

	fmt.Fprintf(&b, "Metode Bayar: %s\n\n", paymentLabel(ord.Customer.PaymentMethod))
	b.WriteString("Mohon konfirmasi pesanan ini. Terima kasih!")

	return b.String()
}

func deliveryLabel(options []domain.DeliveryOption, optionID string) string {
	if opt, ok := checkout.DeliveryOptionByID(options, optionID); ok {
		return opt.Name
	}
	return optionID
}

func feeLabel(optionID string) string {
	if optionID == domain.DeliveryExpress {
		return "Biaya Express"
	}
	return "Ongkos Kirim"
}

func feeValue(fee int64) string {
	if fee == 0 {
		return "GRATIS"
	}
	return pricing.FormatRupiah(fee)
}

func paymentLabel(methodID string) string {
	if m, ok := checkout.PaymentMethodByID(methodID); ok {
		return m.Name
	}
	return methodID
}
