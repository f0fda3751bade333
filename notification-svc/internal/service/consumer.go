package service

import (
	"context"
	"encoding/json"
	"log"

	"quickbite/notification-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	Topic  string
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(topic string, reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{
		Topic:  topic,
		Reader: reader,
		Store:  store,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Printf("Starting notification consumer for topic %q...", c.Topic)
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.Event
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.Process(event)
	}
}

// Process logs every event and runs the aggregate updates that a few
// event types require. Unknown types are logged and skipped.
func (c *Consumer) Process(event domain.Event) {
	log.Printf("Event %s: type=%s order=%d user=%d agent=%d status=%s",
		event.EventID, event.Type, event.OrderID, event.UserID, event.AgentID, event.Status)

	switch event.Type {
	case "rating_submitted":
		if err := c.Store.RecalculateRating(event.TargetType, event.TargetID); err != nil {
			log.Printf("Error recalculating %s %d rating: %v", event.TargetType, event.TargetID, err)
			return
		}
		log.Printf("Recalculated %s %d rating after order %d", event.TargetType, event.TargetID, event.OrderID)
	case "order_placed":
		if err := c.Store.BumpOrderVolume(event.RestaurantID); err != nil {
			log.Printf("Error bumping order volume for restaurant %d: %v", event.RestaurantID, err)
		}
	}
}
