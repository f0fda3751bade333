package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strings"
	"time"

	"quickbite/internal/delivery-svc/domain"
	"quickbite/internal/delivery-svc/storage"

	"github.com/google/uuid"
)

var (
	ErrAgentNotFound    = errors.New("delivery agent not found")
	ErrAgentExists      = errors.New("agent profile already registered")
	ErrAgentInactive    = errors.New("delivery agent is not active")
	ErrAgentBusy        = errors.New("delivery agent is currently on a delivery")
	ErrNoCandidates     = errors.New("no eligible agent within radius")
	ErrAssignConflict   = errors.New("order already assigned or agent no longer available")
	ErrNoAssignment     = errors.New("order has no delivery assignment")
	ErrNotAssignedAgent = errors.New("delivery is assigned to another agent")
	ErrInvalidAgent     = errors.New("agent name is required")
	ErrInvalidLocation  = errors.New("latitude/longitude out of range")
	ErrTransitionLost   = errors.New("delivery was modified concurrently, retry")
)

const statsTTL = 5 * time.Minute

type DeliveryService struct {
	repo      AgentRepository
	cache     AgentCache
	publisher AgentPublisher
}

func NewDeliveryService(repo AgentRepository, cache AgentCache, publisher AgentPublisher) *DeliveryService {
	return &DeliveryService{repo: repo, cache: cache, publisher: publisher}
}

func (s *DeliveryService) degraded(d domain.Degradation) {
	if d.Err != nil {
		log.Printf("Warning: degraded %s: %v", d.Op, d.Err)
	}
}

func (s *DeliveryService) publish(ctx context.Context, event domain.Event) {
	if s.publisher == nil {
		return
	}
	event.EventID = uuid.NewString()
	event.Timestamp = time.Now()
	s.degraded(domain.Degradation{Op: "publish " + event.Type, Err: s.publisher.PublishEvent(ctx, event)})
}

// RegisterAgent creates a courier profile keyed by the courier's own
// user id. New agents start active but unavailable; they flip
// themselves available once ready to take work.
func (s *DeliveryService) RegisterAgent(ctx context.Context, agent *domain.DeliveryAgent) error {
	if agent.ID <= 0 || strings.TrimSpace(agent.Name) == "" {
		return ErrInvalidAgent
	}
	if err := s.repo.CreateAgent(agent); err != nil {
		if storage.IsUniqueViolation(err) {
			return ErrAgentExists
		}
		return err
	}
	agent.IsActive = true
	agent.IsAvailable = false
	return nil
}

func (s *DeliveryService) UpdateLocation(ctx context.Context, agentID int, lat, lng float64) error {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return ErrInvalidLocation
	}
	if _, err := s.loadAgent(agentID); err != nil {
		return err
	}
	if err := s.repo.UpdateLocation(agentID, lat, lng); err != nil {
		return err
	}
	s.publish(ctx, domain.Event{Type: "agent_location_updated", AgentID: agentID, Lat: lat, Lng: lng})
	return nil
}

// UpdateAvailability enforces the valid flag combinations procedurally:
// an agent on a delivery cannot flip itself available.
func (s *DeliveryService) UpdateAvailability(ctx context.Context, agentID int, available bool) error {
	agent, err := s.loadAgent(agentID)
	if err != nil {
		return err
	}
	if !agent.IsActive {
		return ErrAgentInactive
	}
	if available && agent.IsOnDelivery {
		return ErrAgentBusy
	}
	if err := s.repo.UpdateAvailability(agentID, available); err != nil {
		return err
	}

	s.degraded(domain.Degradation{Op: "cache invalidate",
		Err: s.cache.Delete(ctx, s.cache.StatsKey(agentID))})
	s.publish(ctx, domain.Event{Type: "agent_availability_updated", AgentID: agentID})
	return nil
}

func (s *DeliveryService) Stats(ctx context.Context, agentID int) (*domain.AgentStats, error) {
	key := s.cache.StatsKey(agentID)
	var cached domain.AgentStats
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	stats, err := s.repo.AgentStats(agentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAgentNotFound
		}
		return nil, err
	}

	s.degraded(domain.Degradation{Op: "cache agent stats",
		Err: s.cache.SetJSON(ctx, key, stats, statsTTL)})
	return stats, nil
}

// Match is advisory: it scores the pre-filtered candidate set and
// returns the single best agent, or ErrNoCandidates.
func (s *DeliveryService) Match(ctx context.Context, lat, lng, radiusKm float64) (*domain.Match, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 || radiusKm <= 0 {
		return nil, ErrInvalidLocation
	}
	candidates, err := s.repo.CandidatesNear(lat, lng, radiusKm)
	if err != nil {
		return nil, err
	}
	best := BestCandidate(candidates)
	if best == nil {
		return nil, ErrNoCandidates
	}
	return best, nil
}

// Assign commits the advisory match. The repository write is
// conditional on both sides still being free; a lost race comes back as
// ErrAssignConflict rather than a double assignment.
func (s *DeliveryService) Assign(ctx context.Context, orderID, agentID int) error {
	if _, err := s.loadAgent(agentID); err != nil {
		return err
	}
	assigned, err := s.repo.AssignAgent(orderID, agentID)
	if err != nil {
		return err
	}
	if !assigned {
		return ErrAssignConflict
	}

	s.publish(ctx, domain.Event{
		Type:    "delivery_status_updated",
		AgentID: agentID,
		OrderID: orderID,
		Status:  string(domain.DeliveryAssigned),
	})
	return nil
}

// TransitionDelivery advances the delivery leg on behalf of agentID,
// which must be the agent the order is assigned to.
func (s *DeliveryService) TransitionDelivery(ctx context.Context, orderID, agentID int, target domain.DeliveryStatus) error {
	if !domain.ValidDeliveryStatus(target) {
		return &domain.InvalidDeliveryTransitionError{From: "", To: target}
	}

	assignedID, current, err := s.repo.GetAssignment(orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoAssignment
		}
		return err
	}
	if assignedID != agentID {
		return ErrNotAssignedAgent
	}

	if err := domain.CanTransitionDelivery(current, target); err != nil {
		return err
	}

	affected, err := s.repo.UpdateDeliveryStatus(orderID, current, target)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTransitionLost
	}

	s.degraded(domain.Degradation{Op: "cache invalidate",
		Err: s.cache.Delete(ctx, s.cache.StatsKey(agentID))})
	s.publish(ctx, domain.Event{
		Type:    "delivery_status_updated",
		AgentID: agentID,
		OrderID: orderID,
		Status:  string(target),
	})
	return nil
}

func (s *DeliveryService) loadAgent(agentID int) (*domain.DeliveryAgent, error) {
	agent, err := s.repo.GetAgent(agentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAgentNotFound
		}
		return nil, err
	}
	return agent, nil
}
