package httpserver

import (
	"errors"
	"net/http"

	"apotek-storefront/internal/domain"
	"github.com/gin-gonic/gin"
)

type productRequest struct {
	Name          string   `json:"name"`
	Price         *int64   `json:"price"`
	DiscountPrice *int64   `json:"discountPrice"`
	Stock         int      `json:"stock"`
	Unit          string   `json:"unit"`
	Description   string   `json:"description"`
	IsNewArrival  bool     `json:"isNewArrival"`
	MediaURL      string   `json:"mediaUrl"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	Categories    []string `json:"categories"`
}

type categoryRequest struct {
	Name string `json:"name"`
}

func (r productRequest) toDomain(id string) domain.Product {
	p := domain.Product{
		ID:            id,
		Name:          r.Name,
		DiscountPrice: r.DiscountPrice,
		Stock:         r.Stock,
		Unit:          r.Unit,
		Description:   r.Description,
		IsNewArrival:  r.IsNewArrival,
		MediaURL:      r.MediaURL,
		Rating:        r.Rating,
		ReviewCount:   r.ReviewCount,
		Categories:    r.Categories,
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	return p
}

func createProductHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Price == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Nama, kategori, dan harga produk wajib diisi"})
			return
		}

		created, err := svc.Create(c.Request.Context(), req.toDomain(""))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateProductHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Price == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Nama, kategori, dan harga produk wajib diisi"})
			return
		}

		updated, err := svc.Update(c.Request.Context(), req.toDomain(c.Param("id")))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Produk tidak ditemukan"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteProductHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Produk tidak ditemukan"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Terjadi kesalahan saat menghapus produk"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func createCategoryHandler(svc CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req categoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Nama kategori wajib diisi"})
			return
		}

		created, err := svc.Create(c.Request.Context(), req.Name)
		if err != nil {
			if errors.Is(err, domain.ErrConflict) {
				c.JSON(http.StatusConflict, gin.H{"message": "Kategori sudah ada"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func renameCategoryHandler(svc CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req categoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Nama kategori wajib diisi"})
			return
		}

		renamed, err := svc.Rename(c.Request.Context(), c.Param("id"), req.Name)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"message": "Kategori tidak ditemukan"})
			case errors.Is(err, domain.ErrConflict):
				c.JSON(http.StatusConflict, gin.H{"message": "Kategori sudah ada"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, renamed)
	}
}

func deleteCategoryHandler(svc CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Kategori tidak ditemukan"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Terjadi kesalahan saat menghapus kategori"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
