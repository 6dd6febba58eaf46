package product

import (
	"context"
	"errors"
	"strings"

	"apotek-storefront/internal/domain"
	productrepo "apotek-storefront/internal/repository/product"
)

const (
	defaultUnit     = "porsi"
	defaultPageSize = 10
	maxPageSize     = 100
)

type repo interface {
	List(ctx context.Context, f productrepo.ListFilter) ([]domain.Product, int, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo repo
}

func New(r productrepo.Repository) *Service {
	return &Service{repo: r}
}

// ListPage is a catalog page with its pagination metadata.
type ListPage struct {
	Products   []domain.Product
	Page       int
	PageSize   int
	TotalCount int
	TotalPages int
}

func (s *Service) List(ctx context.Context, f productrepo.ListFilter) (*ListPage, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = defaultPageSize
	}
	if f.PageSize > maxPageSize {
		f.PageSize = maxPageSize
	}
	f.Search = strings.TrimSpace(f.Search)
	f.Category = strings.TrimSpace(f.Category)

	products, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	totalPages := total / f.PageSize
	if total%f.PageSize != 0 {
		totalPages++
	}
	return &ListPage{
		Products:   products,
		Page:       f.Page,
		PageSize:   f.PageSize,
		TotalCount: total,
		TotalPages: totalPages,
	}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if err := validate(&p); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if strings.TrimSpace(p.ID) == "" {
		return nil, errors.New("id required")
	}
	if err := validate(&p); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// validate enforces the admin-form required fields and fills defaults.
func validate(p *domain.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return errors.New("name required")
	}

	var categories []string
	for _, c := range p.Categories {
		if c = strings.TrimSpace(c); c != "" {
			categories = append(categories, c)
		}
	}
	p.Categories = categories
	if len(p.Categories) == 0 {
		return errors.New("at least one category required")
	}

	if p.Price < 0 {
		return errors.New("price must not be negative")
	}
	if p.DiscountPrice != nil && (*p.DiscountPrice < 0 || *p.DiscountPrice >= p.Price) {
		return errors.New("discount price must be below the list price")
	}
	if p.Stock < 0 {
		return errors.New("stock must not be negative")
	}
	if p.Unit = strings.TrimSpace(p.Unit); p.Unit == "" {
		p.Unit = defaultUnit
	}
	return nil
}
