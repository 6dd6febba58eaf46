package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"apotek-storefront/internal/domain"
	"apotek-storefront/internal/kv"
	productrepo "apotek-storefront/internal/repository/product"
	cartsvc "apotek-storefront/internal/service/cart"
	productsvc "apotek-storefront/internal/service/product"
	"github.com/gin-gonic/gin"
)

type stubProductService struct {
	product *domain.Product
	err     error
}

func (s *stubProductService) List(_ context.Context, _ productrepo.ListFilter) (*productsvc.ListPage, error) {
	return &productsvc.ListPage{Page: 1, PageSize: 10}, nil
}

func (s *stubProductService) Get(_ context.Context, _ string) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductService) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	return &p, nil
}

func (s *stubProductService) Update(_ context.Context, p domain.Product) (*domain.Product, error) {
	return &p, nil
}

func (s *stubProductService) Delete(_ context.Context, _ string) error {
	return nil
}

func cartTestRouter(products ProductService) (*gin.Engine, CartService) {
	gin.SetMode(gin.TestMode)
	cart := cartsvc.New(kv.NewMemory(), nil)
	router := gin.New()
	session := router.Group("/api", sessionMiddleware())
	session.GET("/cart", getCartHandler(cart))
	session.POST("/cart/items", addCartItemHandler(cart, products))
	session.PATCH("/cart/items/:productId", updateCartItemHandler(cart))
	session.DELETE("/cart/items/:productId", removeCartItemHandler(cart))
	session.DELETE("/cart", clearCartHandler(cart))
	return router, cart
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body, session string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: session})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) cartResponse {
	t.Helper()
	var res cartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode cart response: %v", err)
	}
	return res
}

func TestAddCartItemFlow(t *testing.T) {
	products := &stubProductService{product: &domain.Product{ID: "p1", Name: "Paracetamol 500mg", Price: 10000, Stock: 5, Unit: "strip"}}
	router, _ := cartTestRouter(products)

	rec := doJSON(t, router, http.MethodPost, "/api/cart/items", `{"productId":"p1","quantity":2}`, "s1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	res := decodeCart(t, rec)
	if res.ItemCount != 2 || res.Subtotal != 20000 {
		t.Fatalf("unexpected cart state: %+v", res)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/cart", "", "s1")
	res = decodeCart(t, rec)
	if len(res.Items) != 1 || res.Items[0].ProductID != "p1" {
		t.Fatalf("expected persisted line for p1, got %+v", res.Items)
	}
}

func TestAddCartItemClampsToStock(t *testing.T) {
	products := &stubProductService{product: &domain.Product{ID: "p1", Name: "Paracetamol 500mg", Price: 10000, Stock: 3}}
	router, _ := cartTestRouter(products)

	rec := doJSON(t, router, http.MethodPost, "/api/cart/items", `{"productId":"p1","quantity":10}`, "s1")
	res := decodeCart(t, rec)
	if res.ItemCount != 3 {
		t.Fatalf("expected quantity clamped to stock 3, got %d", res.ItemCount)
	}

	// Cart already at stock, adding more is rejected.
	rec = doJSON(t, router, http.MethodPost, "/api/cart/items", `{"productId":"p1","quantity":1}`, "s1")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 when stock exhausted, got %d", rec.Code)
	}
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	products := &stubProductService{err: domain.ErrNotFound}
	router, _ := cartTestRouter(products)

	rec := doJSON(t, router, http.MethodPost, "/api/cart/items", `{"productId":"ghost","quantity":1}`, "s1")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestUpdateCartItemToZeroRemovesLine(t *testing.T) {
	products := &stubProductService{product: &domain.Product{ID: "p1", Name: "Paracetamol 500mg", Price: 10000, Stock: 5}}
	router, _ := cartTestRouter(products)

	doJSON(t, router, http.MethodPost, "/api/cart/items", `{"productId":"p1","quantity":2}`, "s1")
	rec := doJSON(t, router, http.MethodPatch, "/api/cart/items/p1", `{"quantity":0}`, "s1")
	res := decodeCart(t, rec)
	if len(res.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", res.Items)
	}
}

func TestCartIsScopedPerSession(t *testing.T) {
	products := &stubProductService{product: &domain.Product{ID: "p1", Name: "Paracetamol 500mg", Price: 10000, Stock: 5}}
	router, _ := cartTestRouter(products)

	doJSON(t, router, http.MethodPost, "/api/cart/items", `{"productId":"p1","quantity":1}`, "s1")

	rec := doJSON(t, router, http.MethodGet, "/api/cart", "", "s2")
	res := decodeCart(t, rec)
	if len(res.Items) != 0 {
		t.Fatalf("expected empty cart for other session, got %+v", res.Items)
	}
}

func TestClearCart(t *testing.T) {
	products := &stubProductService{product: &domain.Product{ID: "p1", Name: "Paracetamol 500mg", Price: 10000, Stock: 5}}
	router, _ := cartTestRouter(products)

	doJSON(t, router, http.MethodPost, "/api/cart/items", `{"productId":"p1","quantity":2}`, "s1")
	rec := doJSON(t, router, http.MethodDelete, "/api/cart", "", "s1")
	res := decodeCart(t, rec)
	if res.ItemCount != 0 || res.Subtotal != 0 {
		t.Fatalf("expected cleared cart, got %+v", res)
	}
}
