package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// buildRouter wires routes for the storefront API and the admin panel.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	api.GET("/products", listProductsHandler(deps.ProductSvc))
	api.GET("/products/:id", getProductHandler(deps.ProductSvc))
	api.GET("/categories", listCategoriesHandler(deps.CategorySvc))

	// Cart and checkout state is scoped to the shopper's session cookie.
	session := api.Group("", sessionMiddleware())
	session.GET("/cart", getCartHandler(deps.CartSvc))
	session.POST("/cart/items", addCartItemHandler(deps.CartSvc, deps.ProductSvc))
	session.PATCH("/cart/items/:productId", updateCartItemHandler(deps.CartSvc))
	session.DELETE("/cart/items/:productId", removeCartItemHandler(deps.CartSvc))
	session.DELETE("/cart", clearCartHandler(deps.CartSvc))

	session.GET("/checkout/options", checkoutOptionsHandler())
	session.GET("/checkout/quote", checkoutQuoteHandler(deps.CartSvc))
	session.GET("/checkout/history", checkoutHistoryHandler(deps.HistorySvc))
	session.DELETE("/checkout/history", clearCheckoutHistoryHandler(deps.HistorySvc))
	session.POST("/checkout", submitCheckoutHandler(deps.OrderSvc))

	admin := api.Group("/admin")
	admin.GET("/products", listProductsHandler(deps.ProductSvc))
	admin.GET("/products/:id", getProductHandler(deps.ProductSvc))
	admin.POST("/products", createProductHandler(deps.ProductSvc))
	admin.PUT("/products/:id", updateProductHandler(deps.ProductSvc))
	admin.DELETE("/products/:id", deleteProductHandler(deps.ProductSvc))
	admin.GET("/categories", listCategoriesHandler(deps.CategorySvc))
	admin.POST("/categories", createCategoryHandler(deps.CategorySvc))
	admin.PUT("/categories/:id", renameCategoryHandler(deps.CategorySvc))
	admin.DELETE("/categories/:id", deleteCategoryHandler(deps.CategorySvc))
	admin.GET("/orders", listOrdersHandler(deps.OrderLog))

	return router
}
