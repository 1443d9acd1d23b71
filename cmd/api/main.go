package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/elicharlese/Dropics-sub001/internal/client"
	"github.com/elicharlese/Dropics-sub001/internal/config"
	"github.com/elicharlese/Dropics-sub001/internal/logging"
	"github.com/elicharlese/Dropics-sub001/internal/repository"
	"github.com/elicharlese/Dropics-sub001/internal/server"
	"github.com/elicharlese/Dropics-sub001/internal/service"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Printf("Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := client.InitDatabase(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}

	redisClient, err := client.InitRedisClient(cfg.RedisAddr)
	if err != nil {
		// cache is an optimization, not a dependency
		logger.Warn("redis unavailable, product cache disabled", zap.Error(err))
		redisClient = nil
	}

	stripeClient := client.NewStripeClient(&cfg.Stripe)

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	contactRepo := repository.NewContactRepository(db)
	webhookEventRepo := repository.NewWebhookEventRepository(db)

	catalogService := service.NewCatalogService(productRepo, redisClient)
	services := server.Services{
		User:     service.NewUserService(userRepo, cfg.Auth),
		Catalog:  catalogService,
		Cart:     service.NewCartService(cartRepo, productRepo),
		Wishlist: service.NewWishlistService(wishlistRepo, productRepo),
		Review:   service.NewReviewService(reviewRepo, catalogService),
		Content:  service.NewContentService(blogRepo, contactRepo),
		Order:    service.NewOrderService(db, productRepo, orderRepo, cartRepo, logger),
		Payment: service.NewPaymentService(
			db, stripeClient, cfg.BaseURL,
			orderRepo, productRepo, webhookEventRepo,
			logger,
		),
	}

	srv := server.NewServer(services, cfg.Auth.JWTSecret, logger)
	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	logger.Info("starting HTTP server", zap.String("addr", serverAddr))
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	logger.Info("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		logger.Fatal("HTTP server shutdown error", zap.Error(err))
	}
}
