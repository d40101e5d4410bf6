package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/maheenur13/laundry-lab-frontend/internal/catalog"
	"github.com/maheenur13/laundry-lab-frontend/internal/config"
	"github.com/maheenur13/laundry-lab-frontend/internal/db"
	"github.com/maheenur13/laundry-lab-frontend/internal/handlers"
	"github.com/maheenur13/laundry-lab-frontend/internal/logger"
	"github.com/maheenur13/laundry-lab-frontend/internal/metrics"
	"github.com/maheenur13/laundry-lab-frontend/internal/order"
	"github.com/maheenur13/laundry-lab-frontend/internal/otp"
	"github.com/maheenur13/laundry-lab-frontend/internal/user"
	"github.com/maheenur13/laundry-lab-frontend/pkg/cart"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	otpStore, err := otp.Initialize(cfg.RedisURL, cfg.OTPTTL)
	if err != nil {
		log.Fatalf("Failed to initialize OTP store: %v", err)
	}

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo, otpStore)

	catalogRepo := catalog.NewRepository(database)
	catalogSvc := catalog.NewService(catalogRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, catalogSvc, userRepo, cfg.DeliveryCharge)

	carts := cart.NewStore(cfg.DeliveryCharge)
	registry := metrics.NewRegistry()
	h := handlers.New(userSvc, catalogSvc, orderSvc, carts, registry, cfg.IsDev())

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: h.Router(),
	}

	go func() {
		logger.L().Info("server listening", zap.String("port", cfg.AppPort), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Error("forced shutdown", zap.Error(err))
	}
}
