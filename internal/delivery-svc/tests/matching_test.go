package tests

import (
	"testing"

	"quickbite/internal/delivery-svc/domain"
	"quickbite/internal/delivery-svc/service"

	"github.com/stretchr/testify/assert"
)

func candidate(id int, distanceMeters, rating float64) domain.Candidate {
	return domain.Candidate{
		Agent:          domain.DeliveryAgent{ID: id, Rating: rating},
		DistanceMeters: distanceMeters,
	}
}

func TestScoreCandidate(t *testing.T) {
	tests := []struct {
		name          string
		distance      float64
		rating        float64
		expectedScore float64
	}{
		{name: "perfect_agent_at_pickup", distance: 0, rating: 5, expectedScore: 1.0},
		{name: "unrated_agent_beyond_cutoff", distance: 12000, rating: 0, expectedScore: 0.0},
		{name: "distance_floors_at_cutoff", distance: 10000, rating: 5, expectedScore: 0.4},
		{name: "halfway_half_rating", distance: 5000, rating: 2.5, expectedScore: 0.5},
		{name: "close_but_unrated", distance: 1000, rating: 0, expectedScore: 0.54},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			score := service.ScoreCandidate(candidate(1, testCase.distance, testCase.rating))
			assert.InDelta(t, testCase.expectedScore, score, 1e-9)
		})
	}
}

func TestBestCandidate_PicksHighestScore(t *testing.T) {
	best := service.BestCandidate([]domain.Candidate{
		candidate(1, 9000, 1),
		candidate(2, 500, 4.8),
		candidate(3, 3000, 5),
	})

	assert.NotNil(t, best)
	assert.Equal(t, 2, best.AgentID)
	assert.InDelta(t, 500, best.DistanceMeters, 1e-9)
}

func TestBestCandidate_TieBreaksOnLowestID(t *testing.T) {
	// Identical distance and rating, listed out of id order.
	best := service.BestCandidate([]domain.Candidate{
		candidate(9, 2000, 4),
		candidate(3, 2000, 4),
		candidate(7, 2000, 4),
	})

	assert.NotNil(t, best)
	assert.Equal(t, 3, best.AgentID)
}

func TestBestCandidate_EmptySet(t *testing.T) {
	assert.Nil(t, service.BestCandidate(nil))
	assert.Nil(t, service.BestCandidate([]domain.Candidate{}))
}

func TestHaversine_KnownDistances(t *testing.T) {
	// Berlin Alexanderplatz to Berlin Hauptbahnhof, roughly 3km.
	distance := domain.Haversine(52.5219, 13.4132, 52.5251, 13.3694)
	assert.InDelta(t, 2990, distance, 150)

	assert.InDelta(t, 0, domain.Haversine(48.0, 11.0, 48.0, 11.0), 1e-6)
}
