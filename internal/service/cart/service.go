// Package cart maintains the shopper's cart: a reducer-driven collection of
// product snapshots, durable per session in the key-value store.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"apotek-storefront/internal/domain"
	"apotek-storefront/internal/kv"
)

const keyPrefix = "apotek-cart:"

type Service struct {
	store  kv.Store
	logger *log.Logger
	now    func() time.Time
}

func New(store kv.Store, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{store: store, logger: logger, now: time.Now}
}

// Load reads the persisted cart for the session. It never fails: an absent
// key, a storage error or malformed content all yield an empty cart, with the
// cause logged.
func (s *Service) Load(ctx context.Context, sessionID string) []domain.CartLine {
	raw, err := s.store.Get(ctx, keyPrefix+sessionID)
	if err != nil {
		if !errors.Is(err, kv.ErrNoKey) {
			s.logger.Printf("cart: load session=%s error=%v", sessionID, err)
		}
		return nil
	}
	var lines []domain.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		s.logger.Printf("cart: load session=%s malformed state, resetting: %v", sessionID, err)
		return nil
	}
	return lines
}

// AddItem merges quantity into an existing line for the product or appends a
// new line snapshotting the product's current name, prices, image, unit and
// stock. The upper stock bound is the caller's concern.
func (s *Service) AddItem(ctx context.Context, sessionID string, product domain.Product, quantity int) ([]domain.CartLine, error) {
	line := domain.CartLine{
		ProductID:     product.ID,
		Name:          product.Name,
		UnitPrice:     product.EffectivePrice(),
		ListPrice:     product.Price,
		DiscountPrice: product.DiscountPrice,
		MediaURL:      product.MediaURL,
		Unit:          product.Unit,
		Stock:         product.Stock,
		Quantity:      quantity,
		AddedAt:       s.now().UTC(),
	}
	return s.dispatch(ctx, sessionID, AddItem{Line: line})
}

// SetQuantity replaces the line's quantity; zero or less removes the line.
// No-op when the line does not exist.
func (s *Service) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) ([]domain.CartLine, error) {
	return s.dispatch(ctx, sessionID, SetQuantity{ProductID: productID, Quantity: quantity})
}

func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) ([]domain.CartLine, error) {
	return s.dispatch(ctx, sessionID, RemoveItem{ProductID: productID})
}

func (s *Service) Clear(ctx context.Context, sessionID string) ([]domain.CartLine, error) {
	return s.dispatch(ctx, sessionID, Clear{})
}

// dispatch applies the command and writes the full collection back before
// returning, so a reload immediately after any mutation reproduces it.
func (s *Service) dispatch(ctx context.Context, sessionID string, cmd Command) ([]domain.CartLine, error) {
	lines := Apply(s.Load(ctx, sessionID), cmd)

	raw, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("cart: marshal state: %w", err)
	}
	if err := s.store.Set(ctx, keyPrefix+sessionID, raw); err != nil {
		return nil, fmt.Errorf("cart: persist state: %w", err)
	}
	return lines, nil
}
