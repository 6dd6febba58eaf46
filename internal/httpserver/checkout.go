package httpserver

import (
	"net/http"

	"apotek-storefront/internal/domain"
	cartsvc "apotek-storefront/internal/service/cart"
	"apotek-storefront/internal/service/checkout"
	"github.com/gin-gonic/gin"
)

func checkoutOptionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"areas":               checkout.Areas,
			"deliveryTimeOptions": checkout.DeliveryOptions,
			"paymentMethods":      checkout.PaymentMethods,
		})
	}
}

// checkoutQuoteHandler resolves the delivery fee for the selected area and
// delivery speed, and totals it against the session's current cart.
func checkoutQuoteHandler(cart CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		quote := checkout.ResolveDefault(c.Query("area"), c.Query("delivery"))
		subtotal := cartsvc.Subtotal(cart.Load(c.Request.Context(), sessionID(c)))

		c.JSON(http.StatusOK, gin.H{
			"quote":    quote,
			"subtotal": subtotal,
			"total":    subtotal + quote.Fee,
		})
	}
}

func checkoutHistoryHandler(svc HistoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		sid := sessionID(c)

		names := svc.Names(ctx, sid)
		if names == nil {
			names = []string{}
		}
		areas := svc.Areas(ctx, sid)
		if areas == nil {
			areas = []string{}
		}
		c.JSON(http.StatusOK, gin.H{"names": names, "areas": areas})
	}
}

func clearCheckoutHistoryHandler(svc HistoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		sid := sessionID(c)

		var err error
		switch list := c.Query("list"); list {
		case "names":
			err = svc.ClearNames(ctx, sid)
		case "areas":
			err = svc.ClearAreas(ctx, sid)
		case "":
			err = svc.ClearAll(ctx, sid)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"message": "list harus names atau areas"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menghapus riwayat"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func submitCheckoutHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form domain.CheckoutForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Data pesanan tidak valid"})
			return
		}

		res, err := svc.Submit(c.Request.Context(), sessionID(c), form)
		if err != nil {
			if fieldErrs, ok := domain.AsFieldErrors(err); ok {
				c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Terjadi kesalahan. Silakan coba lagi."})
			return
		}
		c.JSON(http.StatusCreated, res)
	}
}

func listOrdersHandler(log OrderLog) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := log.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Terjadi kesalahan saat mengambil data pesanan"})
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"data": orders})
	}
}
