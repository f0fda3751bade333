package main

import (
	"log"

	"quickbite/config"
	httpapi "quickbite/internal/user-svc/api/http"
	"quickbite/internal/user-svc/service"
	"quickbite/internal/user-svc/storage"
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

	users := service.NewUserService(repo, storage.NewRedisCache(rdb))

	handler := httpapi.NewHandler(users)
	httpapi.StartServer(":8081", httpapi.NewRouter(handler))
}
