package main

import (
	"log"
	"time"

	"quickbite/config"
	httpapi "quickbite/internal/rating-svc/api/http"
	"quickbite/internal/rating-svc/service"
	"quickbite/internal/rating-svc/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter("ratings")
	defer writer.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	ratings := service.NewRatingService(
		repo,
		storage.NewRedisCache(rdb, 7*24*time.Hour),
		storage.NewKafkaPublisher(writer),
	)

	handler := httpapi.NewHandler(ratings)
	httpapi.StartServer(":8085", httpapi.NewRouter(handler))
}
