package domain

import "time"

type Order struct {
	ID              int         `json:"id"`
	OrderNumber     string      `json:"order_number"`
	UserID          int         `json:"user_id"`
	RestaurantID    int         `json:"restaurant_id"`
	AgentID         *int        `json:"agent_id,omitempty"`
	TotalAmount     float64     `json:"total_amount"`
	DeliveryAddress string      `json:"delivery_address"`
	Status          Status      `json:"status"`
	QRCode          string      `json:"qr_code,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	ConfirmedAt     *time.Time  `json:"confirmed_at,omitempty"`
	PreparedAt      *time.Time  `json:"prepared_at,omitempty"`
	PickedUpAt      *time.Time  `json:"picked_up_at,omitempty"`
	DeliveredAt     *time.Time  `json:"delivered_at,omitempty"`
	CancelledAt     *time.Time  `json:"cancelled_at,omitempty"`
	Items           []OrderItem `json:"items"`
}

// OrderItem snapshots name and unit price at order time, so later menu
// edits never alter historical totals.
type OrderItem struct {
	ID         int     `json:"id"`
	MenuItemID int     `json:"menu_item_id"`
	ItemName   string  `json:"item_name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
}

type Event struct {
	EventID      string    `json:"event_id"`
	Type         string    `json:"type"`
	OrderID      int       `json:"order_id"`
	UserID       int       `json:"user_id"`
	RestaurantID int       `json:"restaurant_id"`
	Status       string    `json:"status,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// Degradation records a best-effort side path (cache, event bus) that
// failed without affecting the triggering request.
type Degradation struct {
	Op  string
	Err error
}
