package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"apotek-storefront/internal/config"
	"apotek-storefront/internal/db"
	"apotek-storefront/internal/httpserver"
	"apotek-storefront/internal/kv"
	categoryrepo "apotek-storefront/internal/repository/category"
	orderrepo "apotek-storefront/internal/repository/order"
	productrepo "apotek-storefront/internal/repository/product"
	cartsvc "apotek-storefront/internal/service/cart"
	categorysvc "apotek-storefront/internal/service/category"
	"apotek-storefront/internal/service/checkout"
	ordersvc "apotek-storefront/internal/service/order"
	productsvc "apotek-storefront/internal/service/product"

	"github.com/joho/godotenv"
)

func main() {
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	if err := godotenv.Load(); err != nil {
		logger.Println("no .env file found, using environment")
	}
	cfg := config.FromEnv()

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	redisClient, err := kv.Connect(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Fatalf("connect to redis: %v", err)
	}
	defer redisClient.Close()
	stateStore := kv.NewRedis(redisClient)

	productRepo := productrepo.NewPostgres(dbpool, logger)
	productService := productsvc.New(productRepo)
	categoryRepo := categoryrepo.NewPostgres(dbpool)
	categoryService := categorysvc.New(categoryRepo)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	cartService := cartsvc.New(stateStore, logger)
	historyService := checkout.NewHistory(stateStore, logger)
	orderService := ordersvc.New(cartService, historyService, orderRepo, logger, cfg.StoreName, cfg.WhatsAppNumber)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		ProductSvc:  productService,
		CategorySvc: categoryService,
		CartSvc:     cartService,
		HistorySvc:  historyService,
		OrderSvc:    orderService,
		OrderLog:    orderRepo,
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
