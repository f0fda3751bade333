package domain

import "time"

type TargetType string

const (
	TargetRestaurant TargetType = "restaurant"
	TargetAgent      TargetType = "agent"
)

func ValidTargetType(t TargetType) bool {
	return t == TargetRestaurant || t == TargetAgent
}

type Rating struct {
	ID         int        `json:"id"`
	UserID     int        `json:"user_id"`
	OrderID    int        `json:"order_id"`
	TargetType TargetType `json:"target_type"`
	TargetID   int        `json:"target_id"`
	Score      int        `json:"score"`
	Comment    string     `json:"comment"`
	CreatedAt  time.Time  `json:"created_at"`
}

// OrderSummary is the slice of an order that rating eligibility depends
// on.
type OrderSummary struct {
	ID           int
	UserID       int
	RestaurantID int
	AgentID      *int
	Status       string
}

type Event struct {
	EventID    string     `json:"event_id"`
	Type       string     `json:"type"`
	UserID     int        `json:"user_id"`
	OrderID    int        `json:"order_id"`
	TargetType TargetType `json:"target_type"`
	TargetID   int        `json:"target_id"`
	Score      int        `json:"score"`
	Timestamp  time.Time  `json:"timestamp"`
}

type Degradation struct {
	Op  string
	Err error
}
