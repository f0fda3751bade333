package main

import (
	"context"
	"log"
	"time"

	"quickbite/config"
	httpapi "quickbite/internal/delivery-svc/api/http"
	"quickbite/internal/delivery-svc/service"
	"quickbite/internal/delivery-svc/storage"
	"quickbite/internal/delivery-svc/worker"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter("agents")
	defer writer.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	deliveries := service.NewDeliveryService(
		repo,
		storage.NewRedisCache(rdb),
		storage.NewKafkaPublisher(writer),
	)

	go worker.NewReconcileWorker(repo, time.Minute).Run(context.Background())

	handler := httpapi.NewHandler(deliveries)
	httpapi.StartServer(":8084", httpapi.NewRouter(handler))
}
