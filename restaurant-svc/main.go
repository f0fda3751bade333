package main

import (
	"log"

	"quickbite/config"
	httpapi "quickbite/internal/restaurant-svc/api/http"
	"quickbite/internal/restaurant-svc/service"
	"quickbite/internal/restaurant-svc/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	catalog := service.NewCatalogService(repo, storage.NewRedisCache(rdb))

	handler := httpapi.NewHandler(catalog)
	httpapi.StartServer(":8082", httpapi.NewRouter(handler))
}
