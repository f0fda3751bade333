package domain

import "fmt"

// Status is the customer-facing lifecycle of an order.
type Status string

const (
	StatusPending        Status = "pending"
	StatusConfirmed      Status = "confirmed"
	StatusPreparing      Status = "preparing"
	StatusReadyForPickup Status = "ready_for_pickup"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
	StatusRejected       Status = "rejected"
)

// orderTransitions is the authoritative adjacency table. cancelled is
// reachable from every non-terminal state except out_for_delivery,
// rejected only from pending.
var orderTransitions = map[Status][]Status{
	StatusPending:        {StatusConfirmed, StatusRejected, StatusCancelled},
	StatusConfirmed:      {StatusPreparing, StatusCancelled},
	StatusPreparing:      {StatusReadyForPickup, StatusCancelled},
	StatusReadyForPickup: {StatusOutForDelivery, StatusCancelled},
	StatusOutForDelivery: {StatusDelivered},
	StatusDelivered:      {},
	StatusCancelled:      {},
	StatusRejected:       {},
}

// timestampColumns maps a target status to the column stamped on entry.
var timestampColumns = map[Status]string{
	StatusConfirmed:      "confirmed_at",
	StatusReadyForPickup: "prepared_at",
	StatusOutForDelivery: "picked_up_at",
	StatusDelivered:      "delivered_at",
	StatusCancelled:      "cancelled_at",
}

type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order transition from %s to %s", e.From, e.To)
}

func ValidStatus(s Status) bool {
	_, ok := orderTransitions[s]
	return ok
}

func IsTerminal(s Status) bool {
	next, ok := orderTransitions[s]
	return ok && len(next) == 0
}

// CanTransition reports whether from -> to is in the allowed-next set.
func CanTransition(from, to Status) error {
	for _, allowed := range orderTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return &InvalidTransitionError{From: from, To: to}
}

// TimestampColumn returns the column stamped when entering the status,
// or "" when the status carries no timestamp of its own.
func TimestampColumn(s Status) string {
	return timestampColumns[s]
}
