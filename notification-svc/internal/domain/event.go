package domain

import "time"

// Event is the consumer-side view of every message published on the
// orders, agents and ratings topics. Producers only fill the fields
// relevant to their event type; the rest stay zero.
type Event struct {
	EventID      string    `json:"event_id"`
	Type         string    `json:"type"`
	UserID       int       `json:"user_id,omitempty"`
	OrderID      int       `json:"order_id,omitempty"`
	RestaurantID int       `json:"restaurant_id,omitempty"`
	AgentID      int       `json:"agent_id,omitempty"`
	Status       string    `json:"status,omitempty"`
	TargetType   string    `json:"target_type,omitempty"`
	TargetID     int       `json:"target_id,omitempty"`
	Score        int       `json:"score,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}
