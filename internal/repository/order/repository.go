package order

import (
	"context"

	"apotek-storefront/internal/domain"
)

// Repository is the append-only order log. Append either persists the whole
// order or fails without partial-write visibility; orders are never updated
// through this interface.
type Repository interface {
	Append(ctx context.Context, order domain.Order) error
	List(ctx context.Context) ([]domain.Order, error)
}
