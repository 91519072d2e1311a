package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"storefront-backend/internal/client"
	"storefront-backend/internal/config"
	"storefront-backend/internal/logging"
	"storefront-backend/internal/repository"
	"storefront-backend/internal/server"
	"storefront-backend/internal/service"
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

	log, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db := client.InitMysqlClient(cfg.DatabaseURL)
	rdb := client.InitRedisClient(cfg.RedisURL)
	publisher := client.NewAmqpPublisher(cfg.AMQPURL)
	defer publisher.Close()
	stripeClient := client.NewStripeClient(&cfg.Stripe)

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	bannerRepo := repository.NewBannerRepository(rdb)

	notifier := service.NewQueueNotifier(publisher, log)

	svcs := server.Services{
		Checkout: service.NewCheckoutService(
			db, stripeClient,
			userRepo, cartRepo, orderRepo,
			notifier,
			cfg.Checkout.StrictAmountCheck,
			log,
		),
		User:     service.NewUserService(userRepo, &cfg.JWT),
		Catalog:  service.NewCatalogService(productRepo),
		Cart:     service.NewCartService(cartRepo),
		Wishlist: service.NewWishlistService(wishlistRepo, productRepo),
		Ticket:   service.NewTicketService(ticketRepo),
		Order:    service.NewOrderService(orderRepo),
		Banner:   service.NewBannerService(bannerRepo),
	}

	srv := server.NewServer(&cfg.JWT, svcs, log)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	log.Info("starting HTTP server", zap.String("addr", serverAddr))
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error", zap.Error(err))
	}
}
