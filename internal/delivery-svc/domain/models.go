package domain

import "time"

type DeliveryAgent struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	VehicleType     string    `json:"vehicle_type"`
	IsActive        bool      `json:"is_active"`
	IsAvailable     bool      `json:"is_available"`
	IsOnDelivery    bool      `json:"is_on_delivery"`
	Lat             *float64  `json:"lat,omitempty"`
	Lng             *float64  `json:"lng,omitempty"`
	Rating          float64   `json:"rating"`
	RatingCount     int       `json:"rating_count"`
	TotalDeliveries int       `json:"total_deliveries"`
	TotalEarnings   float64   `json:"total_earnings"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Candidate is an agent pre-filtered by the repository: active,
// available, off delivery, located within the search radius.
type Candidate struct {
	Agent          DeliveryAgent `json:"agent"`
	DistanceMeters float64       `json:"distance_meters"`
}

// Match is the advisory output of agent scoring; assignment is a
// separate conditional write.
type Match struct {
	AgentID        int     `json:"agent_id"`
	Score          float64 `json:"score"`
	DistanceMeters float64 `json:"distance_meters"`
}

type AgentStats struct {
	AgentID         int     `json:"agent_id"`
	Rating          float64 `json:"rating"`
	RatingCount     int     `json:"rating_count"`
	TotalDeliveries int     `json:"total_deliveries"`
	TotalEarnings   float64 `json:"total_earnings"`
}

type Event struct {
	EventID   string    `json:"event_id"`
	Type      string    `json:"type"`
	AgentID   int       `json:"agent_id,omitempty"`
	OrderID   int       `json:"order_id,omitempty"`
	Status    string    `json:"status,omitempty"`
	Lat       float64   `json:"lat,omitempty"`
	Lng       float64   `json:"lng,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type Degradation struct {
	Op  string
	Err error
}
