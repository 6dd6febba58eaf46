package httpserver

import (
	"errors"
	"net/http"

	"apotek-storefront/internal/domain"
	cartsvc "apotek-storefront/internal/service/cart"
	"github.com/gin-gonic/gin"
)

type addCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func getCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lines := svc.Load(c.Request.Context(), sessionID(c))
		c.JSON(http.StatusOK, toCartResponse(lines))
	}
}

// addCartItemHandler resolves the product from the catalog and clamps the
// requested quantity into [1, stock] before handing it to the store; the
// store itself does not enforce the stock bound.
func addCartItemHandler(svc CartService, products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "productId wajib diisi"})
			return
		}
		if req.Quantity < 1 {
			req.Quantity = 1
		}

		ctx := c.Request.Context()
		product, err := products.Get(ctx, req.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Produk tidak ditemukan"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Terjadi kesalahan saat mengambil data produk"})
			return
		}

		sid := sessionID(c)
		existing := 0
		if line, ok := cartsvc.Find(svc.Load(ctx, sid), product.ID); ok {
			existing = line.Quantity
		}
		if existing >= product.Stock {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Stok tidak mencukupi"})
			return
		}
		if existing+req.Quantity > product.Stock {
			req.Quantity = product.Stock - existing
		}

		lines, err := svc.AddItem(ctx, sid, *product, req.Quantity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menyimpan keranjang"})
			return
		}
		c.JSON(http.StatusOK, toCartResponse(lines))
	}
}

func updateCartItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "quantity wajib diisi"})
			return
		}

		ctx := c.Request.Context()
		sid := sessionID(c)
		productID := c.Param("productId")

		if line, ok := cartsvc.Find(svc.Load(ctx, sid), productID); ok && req.Quantity > line.Stock {
			req.Quantity = line.Stock
		}

		lines, err := svc.SetQuantity(ctx, sid, productID, req.Quantity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menyimpan keranjang"})
			return
		}
		c.JSON(http.StatusOK, toCartResponse(lines))
	}
}

func removeCartItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lines, err := svc.RemoveItem(c.Request.Context(), sessionID(c), c.Param("productId"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menyimpan keranjang"})
			return
		}
		c.JSON(http.StatusOK, toCartResponse(lines))
	}
}

func clearCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lines, err := svc.Clear(c.Request.Context(), sessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menyimpan keranjang"})
			return
		}
		c.JSON(http.StatusOK, toCartResponse(lines))
	}
}
