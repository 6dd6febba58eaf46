package product

import (
	"context"

	"apotek-storefront/internal/domain"
)

// ListFilter narrows and pages the catalog listing. Search matches the
// product name case-insensitively; Category matches one of the product's
// category names.
type ListFilter struct {
	Search   string
	Category string
	Page     int
	PageSize int
}

type Repository interface {
	List(ctx context.Context, f ListFilter) ([]domain.Product, int, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
