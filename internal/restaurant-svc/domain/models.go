package domain

import "time"

type Restaurant struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	IsOnline    bool      `json:"is_online"`
	OpensAt     string    `json:"opens_at"`
	ClosesAt    string    `json:"closes_at"`
	Rating      float64   `json:"rating"`
	RatingCount int       `json:"rating_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// MenuItem is soft-disabled through IsAvailable so historical orders keep
// a valid reference; rows are never deleted.
type MenuItem struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Price        float64   `json:"price"`
	IsAvailable  bool      `json:"is_available"`
	CreatedAt    time.Time `json:"created_at"`
}

type Degradation struct {
	Op  string
	Err error
}
