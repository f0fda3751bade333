package main

import (
	"context"
	"log"

	"quickbite/config"
	"quickbite/notification-svc/internal/service"
	"quickbite/notification-svc/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	store := storage.NewStore(db, rdb)

	topics := []string{"orders", "agents", "ratings"}
	for _, topic := range topics[1:] {
		go service.NewConsumer(topic, config.NewKafkaReader(topic, "notification-svc"), store).
			Start(context.Background())
	}

	log.Println("Notification Service consuming topics:", topics)
	service.NewConsumer(topics[0], config.NewKafkaReader(topics[0], "notification-svc"), store).
		Start(context.Background())
}
