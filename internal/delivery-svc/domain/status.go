package domain

import "fmt"

// DeliveryStatus is the agent-facing lifecycle that runs on an order
// once an agent is assigned, parallel to the order status.
type DeliveryStatus string

const (
	DeliveryAssigned            DeliveryStatus = "assigned"
	DeliveryAccepted            DeliveryStatus = "accepted"
	DeliveryRejected            DeliveryStatus = "rejected"
	DeliveryEnRouteToRestaurant DeliveryStatus = "en_route_to_restaurant"
	DeliveryArrivedAtRestaurant DeliveryStatus = "arrived_at_restaurant"
	DeliveryPickedUp            DeliveryStatus = "picked_up"
	DeliveryEnRouteToCustomer   DeliveryStatus = "en_route_to_customer"
	DeliveryArrivedAtCustomer   DeliveryStatus = "arrived_at_customer"
	DeliveryDelivered           DeliveryStatus = "delivered"
	DeliveryCancelled           DeliveryStatus = "cancelled"
)

// deliveryTransitions mirrors the order table's shape; cancelled is
// reachable from every non-terminal state.
var deliveryTransitions = map[DeliveryStatus][]DeliveryStatus{
	DeliveryAssigned:            {DeliveryAccepted, DeliveryRejected, DeliveryCancelled},
	DeliveryAccepted:            {DeliveryEnRouteToRestaurant, DeliveryCancelled},
	DeliveryEnRouteToRestaurant: {DeliveryArrivedAtRestaurant, DeliveryCancelled},
	DeliveryArrivedAtRestaurant: {DeliveryPickedUp, DeliveryCancelled},
	DeliveryPickedUp:            {DeliveryEnRouteToCustomer, DeliveryCancelled},
	DeliveryEnRouteToCustomer:   {DeliveryArrivedAtCustomer, DeliveryCancelled},
	DeliveryArrivedAtCustomer:   {DeliveryDelivered, DeliveryCancelled},
	DeliveryDelivered:           {},
	DeliveryRejected:            {},
	DeliveryCancelled:           {},
}

type InvalidDeliveryTransitionError struct {
	From DeliveryStatus
	To   DeliveryStatus
}

func (e *InvalidDeliveryTransitionError) Error() string {
	return fmt.Sprintf("invalid delivery transition from %s to %s", e.From, e.To)
}

func ValidDeliveryStatus(s DeliveryStatus) bool {
	_, ok := deliveryTransitions[s]
	return ok
}

func DeliveryTerminal(s DeliveryStatus) bool {
	next, ok := deliveryTransitions[s]
	return ok && len(next) == 0
}

func CanTransitionDelivery(from, to DeliveryStatus) error {
	for _, allowed := range deliveryTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return &InvalidDeliveryTransitionError{From: from, To: to}
}
