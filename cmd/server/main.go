package main

import (
	"log"
	"net/http"

	"dudhiya-app/internal/address"
	"dudhiya-app/internal/api"
	"dudhiya-app/internal/cart"
	"dudhiya-app/internal/client"
	"dudhiya-app/internal/config"
	"dudhiya-app/internal/db"
	"dudhiya-app/internal/delivery"
	"dudhiya-app/internal/logger"
	"dudhiya-app/internal/middleware"
	"dudhiya-app/internal/order"
	"dudhiya-app/internal/store"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	var guestStore store.Store
	if cfg.StoreDriver == "postgres" {
		database := db.InitDB(cfg)
		defer database.Close()
		guestStore = store.NewSQLStore(database)
	} else {
		fileStore, err := store.NewFileStore(cfg.StorePath)
		if err != nil {
			log.Fatalf("Failed to open guest store: %v", err)
		}
		guestStore = fileStore
	}

	apiClient := client.New(cfg.APIBaseURL)

	local := cart.NewLocalRepository(guestStore)
	remote := cart.NewRemoteRepository(client.NewCartAPI(apiClient))
	cartSvc := cart.NewService(local, remote)

	addrSvc := address.NewService(client.NewAddressAPI(apiClient))

	resolver := delivery.NewResolver(client.NewDeliveryAPI(apiClient))
	orderSvc := order.NewService(cartSvc, resolver, client.NewOrderAPI(apiClient), addrSvc)

	h := api.NewHandler(cartSvc, orderSvc, addrSvc, resolver)

	handler := logger.RequestIDMiddleware(
		middleware.AuthMiddleware([]byte(cfg.JWTSecret))(
			middleware.RateLimitMiddleware(
				logger.LoggingMiddleware(h.Routes()),
			),
		),
	)

	log.Printf("🛒 dudhiya cart service running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, handler))
}
