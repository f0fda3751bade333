package service

import "quickbite/internal/delivery-svc/domain"

const (
	distanceWeight = 0.6
	ratingWeight   = 0.4
	maxDistanceM   = 10000
)

// ScoreCandidate weighs proximity against reputation. Distance degrades
// linearly up to 10km and floors at 0; rating normalizes out of 5.
func ScoreCandidate(c domain.Candidate) float64 {
	distanceScore := (maxDistanceM - c.DistanceMeters) / maxDistanceM
	if distanceScore < 0 {
		distanceScore = 0
	}
	ratingScore := c.Agent.Rating / 5
	return distanceWeight*distanceScore + ratingWeight*ratingScore
}

// BestCandidate picks the highest score; equal scores fall back to the
// lowest agent id so selection stays deterministic.
func BestCandidate(candidates []domain.Candidate) *domain.Match {
	var best *domain.Match
	for _, c := range candidates {
		score := ScoreCandidate(c)
		if best == nil || score > best.Score ||
			(score == best.Score && c.Agent.ID < best.AgentID) {
			best = &domain.Match{
				AgentID:        c.Agent.ID,
				Score:          score,
				DistanceMeters: c.DistanceMeters,
			}
		}
	}
	return best
}
