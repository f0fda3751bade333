package main

import (
	"log"

	"quickbite/config"
	httpapi "quickbite/internal/order-svc/api/http"
	"quickbite/internal/order-svc/service"
	"quickbite/internal/order-svc/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter("orders")
	defer writer.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	orders := service.NewOrderService(
		repo,
		storage.NewRedisCache(rdb),
		storage.NewKafkaPublisher(writer),
		service.DefaultQRGenerator{BaseURL: "http://localhost:8083"},
	)

	handler := httpapi.NewHandler(orders)
	httpapi.StartServer(":8083", httpapi.NewRouter(handler))
}
