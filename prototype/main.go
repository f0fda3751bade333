// Single-process build of the platform. Every service router is mounted
// on one mux against shared infrastructure; the services themselves are
// wired exactly as in their standalone binaries.
package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"quickbite/config"

	deliveryhttp "quickbite/internal/delivery-svc/api/http"
	deliveryservice "quickbite/internal/delivery-svc/service"
	deliverystorage "quickbite/internal/delivery-svc/storage"
	"quickbite/internal/delivery-svc/worker"

	orderhttp "quickbite/internal/order-svc/api/http"
	orderservice "quickbite/internal/order-svc/service"
	orderstorage "quickbite/internal/order-svc/storage"

	ratinghttp "quickbite/internal/rating-svc/api/http"
	ratingservice "quickbite/internal/rating-svc/service"
	ratingstorage "quickbite/internal/rating-svc/storage"

	restauranthttp "quickbite/internal/restaurant-svc/api/http"
	restaurantservice "quickbite/internal/restaurant-svc/service"
	restaurantstorage "quickbite/internal/restaurant-svc/storage"

	userhttp "quickbite/internal/user-svc/api/http"
	userservice "quickbite/internal/user-svc/service"
	userstorage "quickbite/internal/user-svc/storage"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	orderWriter := config.NewKafkaWriter("orders")
	defer orderWriter.Close()
	agentWriter := config.NewKafkaWriter("agents")
	defer agentWriter.Close()
	ratingWriter := config.NewKafkaWriter("ratings")
	defer ratingWriter.Close()

	userRepo := userstorage.NewPostgresRepository(db)
	restaurantRepo := restaurantstorage.NewPostgresRepository(db)
	orderRepo := orderstorage.NewPostgresRepository(db)
	deliveryRepo := deliverystorage.NewPostgresRepository(db)
	ratingRepo := ratingstorage.NewPostgresRepository(db)

	for _, ensure := range []func() error{
		userRepo.EnsureSchema,
		restaurantRepo.EnsureSchema,
		orderRepo.EnsureSchema,
		deliveryRepo.EnsureSchema,
		ratingRepo.EnsureSchema,
	} {
		if err := ensure(); err != nil {
			log.Fatal("Failed to ensure schema:", err)
		}
	}

	users := userservice.NewUserService(userRepo, userstorage.NewRedisCache(rdb))
	catalog := restaurantservice.NewCatalogService(restaurantRepo, restaurantstorage.NewRedisCache(rdb))
	orders := orderservice.NewOrderService(
		orderRepo,
		orderstorage.NewRedisCache(rdb),
		orderstorage.NewKafkaPublisher(orderWriter),
		orderservice.DefaultQRGenerator{BaseURL: "http://localhost:8090"},
	)
	deliveries := deliveryservice.NewDeliveryService(
		deliveryRepo,
		deliverystorage.NewRedisCache(rdb),
		deliverystorage.NewKafkaPublisher(agentWriter),
	)
	ratings := ratingservice.NewRatingService(
		ratingRepo,
		ratingstorage.NewRedisCache(rdb, 7*24*time.Hour),
		ratingstorage.NewKafkaPublisher(ratingWriter),
	)

	go worker.NewReconcileWorker(deliveryRepo, time.Minute).Run(context.Background())

	r := mux.NewRouter()
	userhttp.NewHandler(users).RegisterRoutes(r)
	restauranthttp.NewHandler(catalog).RegisterRoutes(r)
	orderhttp.NewHandler(orders).RegisterRoutes(r)
	deliveryhttp.NewHandler(deliveries).RegisterRoutes(r)
	ratinghttp.NewHandler(ratings).RegisterRoutes(r)

	log.Println("Prototype starting on :8090")
	log.Fatal(http.ListenAndServe(":8090", cors.Default().Handler(r)))
}
