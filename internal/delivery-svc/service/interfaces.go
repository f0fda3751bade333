package service

import (
	"context"
	"time"

	"quickbite/internal/delivery-svc/domain"
)

type DeliveryServiceInterface interface {
	RegisterAgent(ctx context.Context, agent *domain.DeliveryAgent) error
	UpdateLocation(ctx context.Context, agentID int, lat, lng float64) error
	UpdateAvailability(ctx context.Context, agentID int, available bool) error
	Stats(ctx context.Context, agentID int) (*domain.AgentStats, error)
	Match(ctx context.Context, lat, lng, radiusKm float64) (*domain.Match, error)
	Assign(ctx context.Context, orderID, agentID int) error
	TransitionDelivery(ctx context.Context, orderID, agentID int, target domain.DeliveryStatus) error
}

type AgentRepository interface {
	GetAgent(agentID int) (*domain.DeliveryAgent, error)
	CreateAgent(agent *domain.DeliveryAgent) error
	UpdateLocation(agentID int, lat, lng float64) error
	UpdateAvailability(agentID int, available bool) error
	CandidatesNear(lat, lng, radiusKm float64) ([]domain.Candidate, error)
	AssignAgent(orderID, agentID int) (bool, error)
	GetAssignment(orderID int) (int, domain.DeliveryStatus, error)
	UpdateDeliveryStatus(orderID int, from, to domain.DeliveryStatus) (int64, error)
	ReconcileAgentFlags() (int64, error)
	AgentStats(agentID int) (*domain.AgentStats, error)
}

type AgentCache interface {
	StatsKey(agentID int) string
	GetJSON(ctx context.Context, key string, v interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type AgentPublisher interface {
	PublishEvent(ctx context.Context, event domain.Event) error
}

var _ DeliveryServiceInterface = (*DeliveryService)(nil)
