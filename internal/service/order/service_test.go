package order

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"apotek-storefront/internal/domain"
	"apotek-storefront/internal/kv"
	cartsvc "apotek-storefront/internal/service/cart"
	"apotek-storefront/internal/service/checkout"
)

type stubOrderRepo struct {
	appended  []domain.Order
	appendErr error
}

func (s *stubOrderRepo) Append(_ context.Context, ord domain.Order) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.appended = append(s.appended, ord)
	return nil
}

func newTestService(t *testing.T, repo *stubOrderRepo) (*Service, *cartsvc.Service) {
	t.Helper()
	store := kv.NewMemory()
	cart := cartsvc.New(store, nil)
	history := checkout.NewHistory(store, nil)
	svc := New(cart, history, repo, nil, "TRENGGALEK APOTEK", "6281234567890")
	svc.now = func() time.Time { return time.Date(2025, 6, 7, 10, 30, 0, 0, time.UTC) }
	return svc, cart
}

func seedCart(t *testing.T, cart *cartsvc.Service, sessionID string) {
	t.Helper()
	ctx := context.Background()
	if _, err := cart.AddItem(ctx, sessionID, domain.Product{ID: "p1", Name: "Paracetamol 500mg", Price: 10000, Stock: 20, Unit: "strip"}, 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, err := cart.AddItem(ctx, sessionID, domain.Product{ID: "p2", Name: "Vitamin C 1000mg", Price: 25000, Stock: 10, Unit: "botol"}, 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
}

func TestSubmitFreeShippingTotal(t *testing.T) {
	ctx := context.Background()
	repo := &stubOrderRepo{}
	svc, cart := newTestService(t, repo)
	seedCart(t, cart, "s1")

	res, err := svc.Submit(ctx, "s1", domain.CheckoutForm{
		Name:         "Budi",
		Area:         "Krandegan",
		DeliveryTime: domain.DeliveryRegular,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Order.Subtotal != 45000 || res.Order.DeliveryFee != 0 || res.Order.Total != 45000 {
		t.Fatalf("unexpected totals: %+v", res.Order)
	}
	if res.Order.Status != domain.OrderStatusPending {
		t.Fatalf("expected pending status, got %s", res.Order.Status)
	}
	if len(repo.appended) != 1 {
		t.Fatalf("expected one appended order, got %d", len(repo.appended))
	}
}

func TestSubmitExpressFeeReplacesRegular(t *testing.T) {
	ctx := context.Background()
	svc, cart := newTestService(t, &stubOrderRepo{})
	seedCart(t, cart, "s1")

	res, err := svc.Submit(ctx, "s1", domain.CheckoutForm{
		Name:         "Budi",
		Area:         "Widoro",
		DeliveryTime: domain.DeliveryExpress,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Order.DeliveryFee != 12000 || res.Order.Total != 57000 {
		t.Fatalf("expected express fee 12000 and total 57000, got %+v", res.Order)
	}
}

func TestSubmitEmptyNameLeavesCartUntouched(t *testing.T) {
	ctx := context.Background()
	repo := &stubOrderRepo{}
	svc, cart := newTestService(t, repo)
	seedCart(t, cart, "s1")

	_, err := svc.Submit(ctx, "s1", domain.CheckoutForm{
		Name:         "   ",
		Area:         "Krandegan",
		DeliveryTime: domain.DeliveryRegular,
	})
	fieldErrs, ok := domain.AsFieldErrors(err)
	if !ok || fieldErrs["name"] == "" {
		t.Fatalf("expected name field error, got %v", err)
	}
	if len(repo.appended) != 0 {
		t.Fatalf("expected no order appended")
	}
	if lines := cart.Load(ctx, "s1"); len(lines) != 2 {
		t.Fatalf("expected cart preserved with 2 lines, got %d", len(lines))
	}
}

func TestSubmitEmptyCartRejected(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, &stubOrderRepo{})

	_, err := svc.Submit(ctx, "s1", domain.CheckoutForm{
		Name:         "Budi",
		Area:         "Krandegan",
		DeliveryTime: domain.DeliveryRegular,
	})
	fieldErrs, ok := domain.AsFieldErrors(err)
	if !ok || fieldErrs["cart"] == "" {
		t.Fatalf("expected cart field error, got %v", err)
	}
}

func TestSubmitSuccessClearsCart(t *testing.T) {
	ctx := context.Background()
	svc, cart := newTestService(t, &stubOrderRepo{})
	seedCart(t, cart, "s1")

	if _, err := svc.Submit(ctx, "s1", domain.CheckoutForm{
		Name:         "Budi",
		Area:         "Melis",
		DeliveryTime: domain.DeliveryRegular,
	}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	lines := cart.Load(ctx, "s1")
	if len(lines) != 0 || cartsvc.Subtotal(lines) != 0 {
		t.Fatalf("expected empty cart after submission, got %+v", lines)
	}
}

func TestSubmitAppendFailureKeepsCart(t *testing.T) {
	ctx := context.Background()
	repo := &stubOrderRepo{appendErr: errors.New("db down")}
	svc, cart := newTestService(t, repo)
	seedCart(t, cart, "s1")

	_, err := svc.Submit(ctx, "s1", domain.CheckoutForm{
		Name:         "Budi",
		Area:         "Melis",
		DeliveryTime: domain.DeliveryRegular,
	})
	if err == nil {
		t.Fatalf("expected append error")
	}
	if _, ok := domain.AsFieldErrors(err); ok {
		t.Fatalf("append failure must not look like a validation error: %v", err)
	}
	if lines := cart.Load(ctx, "s1"); len(lines) != 2 {
		t.Fatalf("expected cart preserved for retry, got %d lines", len(lines))
	}
}

func TestSubmitRecordsHistory(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	cart := cartsvc.New(store, nil)
	history := checkout.NewHistory(store, nil)
	svc := New(cart, history, &stubOrderRepo{}, nil, "TRENGGALEK APOTEK", "6281234567890")
	seedCart(t, cart, "s1")

	if _, err := svc.Submit(ctx, "s1", domain.CheckoutForm{
		Name:         "  Budi  ",
		Area:         "Melis",
		DeliveryTime: domain.DeliveryRegular,
	}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if names := history.Names(ctx, "s1"); len(names) != 1 || names[0] != "Budi" {
		t.Fatalf("expected trimmed name in history, got %v", names)
	}
	if areas := history.Areas(ctx, "s1"); len(areas) != 1 || areas[0] != "Melis" {
		t.Fatalf("expected area in history, got %v", areas)
	}
}

func TestSubmitCoercesDisabledExpress(t *testing.T) {
	ctx := context.Background()
	svc, cart := newTestService(t, &stubOrderRepo{})
	svc.options = []domain.DeliveryOption{
		{ID: domain.DeliveryRegular, Name: "Regular", Available: true},
		{ID: domain.DeliveryExpress, Name: "Secepatnya", Available: false},
	}
	seedCart(t, cart, "s1")

	res, err := svc.Submit(ctx, "s1", domain.CheckoutForm{
		Name:         "Budi",
		Area:         "Widoro",
		DeliveryTime: domain.DeliveryExpress,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Order.Customer.DeliveryTime != domain.DeliveryRegular || res.Order.DeliveryFee != 8000 {
		t.Fatalf("expected coercion to regular with fee 8000, got %+v", res.Order)
	}
}

func TestSubmitRenderedMessage(t *testing.T) {
	ctx := context.Background()
	svc, cart := newTestService(t, &stubOrderRepo{})
	seedCart(t, cart, "s1")

	res, err := svc.Submit(ctx, "s1", domain.CheckoutForm{
		Name:          "Budi",
		Area:          "Krandegan",
		DeliveryTime:  domain.DeliveryRegular,
		Notes:         "Rumah pagar hijau",
		PaymentMethod: "cod",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	for _, want := range []string{
		"*PESANAN BARU - TRENGGALEK APOTEK*",
		"Order ID: " + res.Order.ID,
		"Tanggal: 7/6/2025",
		"Nama: Budi",
		"Daerah: Krandegan",
		"Waktu Pengiriman: Regular",
		"Catatan: Rumah pagar hijau",
		"• Paracetamol 500mg (2x) - Rp20.000",
		"• Vitamin C 1000mg (1x) - Rp25.000",
		"Subtotal: Rp45.000",
		"Ongkos Kirim: GRATIS",
		"Total: Rp45.000",
		"Metode Bayar: Bayar di Tempat (COD)",
	} {
		if !strings.Contains(res.Message, want) {
			t.Fatalf("message missing %q:\n%s", want, res.Message)
		}
	}
	if !strings.HasPrefix(res.WhatsAppURL, "https://wa.me/6281234567890?text=") {
		t.Fatalf("unexpected whatsapp url %s", res.WhatsAppURL)
	}
}
