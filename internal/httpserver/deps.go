package httpserver

import (
	"context"

	"apotek-storefront/internal/domain"
	productrepo "apotek-storefront/internal/repository/product"
	ordersvc "apotek-storefront/internal/service/order"
	productsvc "apotek-storefront/internal/service/product"
)

type ProductService interface {
	List(ctx context.Context, f productrepo.ListFilter) (*productsvc.ListPage, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, name string) (*domain.Category, error)
	Rename(ctx context.Context, id, name string) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type CartService interface {
	Load(ctx context.Context, sessionID string) []domain.CartLine
	AddItem(ctx context.Context, sessionID string, product domain.Product, quantity int) ([]domain.CartLine, error)
	SetQuantity(ctx context.Context, sessionID, productID string, quantity int) ([]domain.CartLine, error)
	RemoveItem(ctx context.Context, sessionID, productID string) ([]domain.CartLine, error)
	Clear(ctx context.Context, sessionID string) ([]domain.CartLine, error)
}

type HistoryService interface {
	Names(ctx context.Context, sessionID string) []string
	Areas(ctx context.Context, sessionID string) []string
	ClearNames(ctx context.Context, sessionID string) error
	ClearAreas(ctx context.Context, sessionID string) error
	ClearAll(ctx context.Context, sessionID string) error
}

type OrderService interface {
	Submit(ctx context.Context, sessionID string, form domain.CheckoutForm) (*ordersvc.SubmitResult, error)
}

type OrderLog interface {
	List(ctx context.Context) ([]domain.Order, error)
}

// Deps carries the services the router wires into handlers.
type Deps struct {
	ProductSvc  ProductService
	CategorySvc CategoryService
	CartSvc     CartService
	HistorySvc  HistoryService
	OrderSvc    OrderService
	OrderLog    OrderLog
}
