// Package order composes a validated checkout form and cart snapshot into a
// persisted order and the WhatsApp confirmation message handed to the shop.
package order

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"time"

	"apotek-storefront/internal/domain"
	cartsvc "apotek-storefront/internal/service/cart"
	"apotek-storefront/internal/service/checkout"
)

type cartStore interface {
	Load(ctx context.Context, sessionID string) []domain.CartLine
	Clear(ctx context.Context, sessionID string) ([]domain.CartLine, error)
}

type historyStore interface {
	RecordName(ctx context.Context, sessionID, name string) error
	RecordArea(ctx context.Context, sessionID, area string) error
}

type orderRepo interface {
	Append(ctx context.Context, order domain.Order) error
}

type Service struct {
	cart    cartStore
	history historyStore
	orders  orderRepo
	logger  *log.Logger

	storeName      string
	whatsAppNumber string
	areas          []domain.DeliveryArea
	options        []domain.DeliveryOption
	now            func() time.Time
}

func New(cart cartStore, history historyStore, orders orderRepo, logger *log.Logger, storeName, whatsAppNumber string) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		cart:           cart,
		history:        history,
		orders:         orders,
		logger:         logger,
		storeName:      storeName,
		whatsAppNumber: whatsAppNumber,
		areas:          checkout.Areas,
		options:        checkout.DeliveryOptions,
		now:            time.Now,
	}
}

// SubmitResult is what a successful checkout hands back to the client: the
// persisted order, the rendered summary and the wa.me link that opens the
// conversation with the shop.
type SubmitResult struct {
	Order       domain.Order `json:"order"`
	Message     string       `json:"message"`
	WhatsAppURL string       `json:"whatsappUrl"`
}

// Submit validates the form, persists the order and clears the cart. On a
// validation error nothing happens; on an append error the cart is left
// intact so the shopper can retry. Retried submissions are not deduplicated.
func (s *Service) Submit(ctx context.Context, sessionID string, form domain.CheckoutForm) (*SubmitResult, error) {
	if form.DeliveryTime == "" {
		form.DeliveryTime = domain.DeliveryRegular
	}
	if form.PaymentMethod == "" {
		form.PaymentMethod = "cod"
	}

	if errs := checkout.ValidateForm(s.areas, form); errs != nil {
		return nil, errs
	}

	lines := s.cart.Load(ctx, sessionID)
	if len(lines) == 0 {
		return nil, domain.FieldErrors{"cart": "Keranjang kosong"}
	}

	quote := checkout.Resolve(s.areas, s.options, form.Area, form.DeliveryTime)
	form.DeliveryTime = quote.DeliveryOption
	subtotal := cartsvc.Subtotal(lines)

	now := s.now()
	ord := domain.Order{
		ID:          fmt.Sprintf("ORD-%d", now.UnixMilli()),
		Lines:       lines,
		Customer:    form,
		Subtotal:    subtotal,
		DeliveryFee: quote.Fee,
		Total:       subtotal + quote.Fee,
		Status:      domain.OrderStatusPending,
		CreatedAt:   now.UTC(),
	}

	if err := s.orders.Append(ctx, ord); err != nil {
		return nil, fmt.Errorf("append order %s: %w", ord.ID, err)
	}

	// The history lists are advisory; a failed write must not fail the order.
	if err := s.history.RecordName(ctx, sessionID, form.Name); err != nil {
		s.logger.Printf("order: record name history: %v", err)
	}
	if err := s.history.RecordArea(ctx, sessionID, form.Area); err != nil {
		s.logger.Printf("order: record area history: %v", err)
	}

	if _, err := s.cart.Clear(ctx, sessionID); err != nil {
		// The order is already persisted; stale cart state is the lesser evil.
		s.logger.Printf("order: clear cart session=%s: %v", sessionID, err)
	}

	message := renderMessage(s.storeName, ord, s.options)
	return &SubmitResult{
		Order:       ord,
		Message:     message,
		WhatsAppURL: fmt.Sprintf("https://wa.me/%s?text=%s", s.whatsAppNumber, url.QueryEscape(message)),
	}, nil
}
