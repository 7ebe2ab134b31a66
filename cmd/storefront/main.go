package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/razoraze123/gnamgnam/internal/cart"
	"github.com/razoraze123/gnamgnam/internal/catalog"
	"github.com/razoraze123/gnamgnam/internal/checkout"
	"github.com/razoraze123/gnamgnam/internal/config"
	h "github.com/razoraze123/gnamgnam/internal/http"
	"github.com/razoraze123/gnamgnam/internal/identity"
	"github.com/razoraze123/gnamgnam/internal/reviews"
	"github.com/razoraze123/gnamgnam/internal/toast"
	"github.com/razoraze123/gnamgnam/internal/whatsapp"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	creds := &catalog.Credentials{
		Host:              cfg.PostgresHost,
		Port:              cfg.PostgresPort,
		User:              cfg.PostgresUser,
		Password:          cfg.PostgresPassword,
		DBName:            cfg.PostgresDB,
		MigrationsDirPath: cfg.MigrationsDir,
	}
	repo, err := catalog.NewPostgresRepository(creds)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to catalog store")
	}
	defer repo.Close()

	if err := repo.RunMigrations(creds); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}
	log.WithField("host", cfg.PostgresHost).Info("connected to catalog store")

	ctx := context.Background()
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.WithError(err).Fatal("redis connection failed")
	}
	log.WithField("addr", cfg.RedisAddr).Info("redis ping succeeded")

	products := catalog.NewProductService(repo, log)
	carts := cart.NewService(cart.NewRedisStore(redisClient, cfg.CartTTL), log)
	identities := identity.NewService(repo, identity.NewRedisSessionStore(redisClient, cfg.SessionTTL), log)
	formatter := whatsapp.NewFormatter(cfg.WhatsAppNumber, cfg.SiteURL)
	checkoutSvc := checkout.NewService(carts, identities, repo, formatter, cfg.DefaultDeliveryFee, log)
	reviewsSvc := reviews.NewService(repo, redisClient, log)
	toasts := toast.NewManager(cfg.ToastTTL)

	router := h.NewRouter(h.Handlers{
		Products: h.NewProductHandler(products),
		Cart:     h.NewCartHandler(carts, products, checkoutSvc),
		Checkout: h.NewCheckoutHandler(checkoutSvc),
		Auth:     h.NewAuthHandler(identities),
		Reviews:  h.NewReviewsHandler(reviewsSvc),
		Toasts:   h.NewToastHandler(toasts),
	}, log, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:        ":" + cfg.HTTPPort,
		Handler:     router,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.HTTPPort).Info("storefront listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down storefront...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("storefront stopped")
}
