package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/rosemall/flash-order-service/internal/app/background"
	"github.com/rosemall/flash-order-service/internal/app/setup"
	"github.com/rosemall/flash-order-service/internal/delivery/httpapi"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	deps, err := setup.InitializeDependencies()
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}
	defer deps.OrderPublisher.Close()

	useCases, err := setup.InitializeUseCases(deps)
	if err != nil {
		log.Fatalf("failed to init usecases: %v", err)
	}

	cfg := deps.Config

	auth := httpapi.NewAuthManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	authHandler := httpapi.NewAuthHandler(useCases.UserUsecase, auth, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword)
	storefront := httpapi.NewStorefrontHandler(
		useCases.OrderUsecase,
		useCases.FlashSaleUsecase,
		useCases.ProfileUsecase,
		useCases.CouponUsecase,
		useCases.ReferralUsecase,
	)
	admin := httpapi.NewAdminHandler(
		useCases.OrderUsecase,
		useCases.ProductUsecase,
		useCases.UserUsecase,
		useCases.CouponUsecase,
		useCases.DashboardUsecase,
		useCases.SaleConfigProvider,
	)

	tasks := background.NewBackgroundTasks(
		useCases.OrderUsecase,
		useCases.SaleConfigProvider,
		deps.Metrics,
		cfg.Location(),
	)
	tasks.StartAll(context.Background())

	router := httpapi.NewRouter(auth, authHandler, storefront, admin)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
