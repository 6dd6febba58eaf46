package product

import (
	"context"
	"testing"

	"apotek-storefront/internal/domain"
	productrepo "apotek-storefront/internal/repository/product"
)

type stubRepo struct {
	listProducts []domain.Product
	listTotal    int
	listErr      error
	lastFilter   productrepo.ListFilter
	created      *domain.Product
	createErr    error
	lastCreated  domain.Product
}

func (s *stubRepo) List(_ context.Context, f productrepo.ListFilter) ([]domain.Product, int, error) {
	s.lastFilter = f
	return s.listProducts, s.listTotal, s.listErr
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}

func (s *stubRepo) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.lastCreated = p
	return s.created, s.createErr
}

func (s *stubRepo) Update(_ context.Context, p domain.Product) (*domain.Product, error) {
	return &p, nil
}

func (s *stubRepo) Delete(_ context.Context, _ string) error {
	return nil
}

func TestListDefaultsAndMeta(t *testing.T) {
	repo := &stubRepo{listTotal: 25}
	svc := &Service{repo: repo}

	page, err := svc.List(context.Background(), productrepo.ListFilter{Page: 0, PageSize: 0})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.lastFilter.Page != 1 || repo.lastFilter.PageSize != 10 {
		t.Fatalf("expected default paging 1/10, got %+v", repo.lastFilter)
	}
	if page.TotalCount != 25 || page.TotalPages != 3 {
		t.Fatalf("expected 25 items over 3 pages, got %+v", page)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.Product{Name: "  ", Categories: []string{"Obat"}, Price: 100})
	if err == nil || err.Error() != "name required" {
		t.Fatalf("expected name error, got %v", err)
	}

	_, err = svc.Create(ctx, domain.Product{Name: "Paracetamol", Price: 100})
	if err == nil || err.Error() != "at least one category required" {
		t.Fatalf("expected category error, got %v", err)
	}

	_, err = svc.Create(ctx, domain.Product{Name: "Paracetamol", Categories: []string{"Obat"}, Price: -1})
	if err == nil || err.Error() != "price must not be negative" {
		t.Fatalf("expected price error, got %v", err)
	}

	discount := int64(200)
	_, err = svc.Create(ctx, domain.Product{Name: "Paracetamol", Categories: []string{"Obat"}, Price: 100, DiscountPrice: &discount})
	if err == nil || err.Error() != "discount price must be below the list price" {
		t.Fatalf("expected discount error, got %v", err)
	}
}

func TestCreateFillsDefaultUnit(t *testing.T) {
	repo := &stubRepo{created: &domain.Product{ID: "p1"}}
	svc := &Service{repo: repo}

	_, err := svc.Create(context.Background(), domain.Product{
		Name:       "Paracetamol 500mg",
		Categories: []string{" Obat ", ""},
		Price:      10000,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if repo.lastCreated.Unit != "porsi" {
		t.Fatalf("expected default unit porsi, got %q", repo.lastCreated.Unit)
	}
	if len(repo.lastCreated.Categories) != 1 || repo.lastCreated.Categories[0] != "Obat" {
		t.Fatalf("expected trimmed categories, got %v", repo.lastCreated.Categories)
	}
}
