package httpserver

import (
	"apotek-storefront/internal/domain"
	cartsvc "apotek-storefront/internal/service/cart"
	productsvc "apotek-storefront/internal/service/product"
)

type listMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
}

type productListResponse struct {
	Data []domain.Product `json:"data"`
	Meta listMeta         `json:"meta"`
}

func toProductListResponse(page *productsvc.ListPage) productListResponse {
	products := page.Products
	if products == nil {
		products = []domain.Product{}
	}
	return productListResponse{
		Data: products,
		Meta: listMeta{
			Page:       page.Page,
			PageSize:   page.PageSize,
			TotalCount: page.TotalCount,
			TotalPages: page.TotalPages,
		},
	}
}

type cartResponse struct {
	Items     []domain.CartLine `json:"items"`
	ItemCount int               `json:"itemCount"`
	Subtotal  int64             `json:"subtotal"`
}

func toCartResponse(lines []domain.CartLine) cartResponse {
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return cartResponse{
		Items:     lines,
		ItemCount: cartsvc.ItemCount(lines),
		Subtotal:  cartsvc.Subtotal(lines),
	}
}
