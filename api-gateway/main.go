package main

import (
	"log"
	"net/http"
	"os"

	"quickbite/api-gateway/internal/gateway"
	"quickbite/config"

	"github.com/rs/cors"
)

func main() {
	config.LoadEnv()

	gatewayConfig := gateway.Config{
		UserSvcURL:       getEnv("USER_SVC_URL", "http://localhost:8081"),
		RestaurantSvcURL: getEnv("RESTAURANT_SVC_URL", "http://localhost:8082"),
		OrderSvcURL:      getEnv("ORDER_SVC_URL", "http://localhost:8083"),
		DeliverySvcURL:   getEnv("DELIVERY_SVC_URL", "http://localhost:8084"),
		RatingSvcURL:     getEnv("RATING_SVC_URL", "http://localhost:8085"),
	}

	gw := gateway.NewGateway(gatewayConfig, &http.Client{})

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(r)

	log.Println("API Gateway starting on port 8080")
	log.Fatal(http.ListenAndServe(":8080", handler))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
