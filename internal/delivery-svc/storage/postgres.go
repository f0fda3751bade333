package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"quickbite/internal/delivery-svc/domain"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// IsUniqueViolation reports whether err is the agents' primary key
// constraint firing, meaning the courier already has a profile.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

const agentColumns = `id, name, phone, vehicle_type, is_active, is_available, is_on_delivery,
	lat, lng, rating, rating_count, total_deliveries, total_earnings, updated_at`

func scanAgent(row interface{ Scan(...interface{}) error }) (*domain.DeliveryAgent, error) {
	var agent domain.DeliveryAgent
	err := row.Scan(&agent.ID, &agent.Name, &agent.Phone, &agent.VehicleType,
		&agent.IsActive, &agent.IsAvailable, &agent.IsOnDelivery,
		&agent.Lat, &agent.Lng, &agent.Rating, &agent.RatingCount,
		&agent.TotalDeliveries, &agent.TotalEarnings, &agent.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

func (r *PostgresRepository) GetAgent(agentID int) (*domain.DeliveryAgent, error) {
	return scanAgent(r.DB.QueryRow(
		"SELECT "+agentColumns+" FROM delivery_agents WHERE id = $1", agentID))
}

// CreateAgent inserts the profile under the courier's user id, so every
// later lookup can address the row straight from the token subject.
func (r *PostgresRepository) CreateAgent(agent *domain.DeliveryAgent) error {
	return r.DB.QueryRow(`
		INSERT INTO delivery_agents (id, name, phone, vehicle_type, is_active, is_available)
		VALUES ($1, $2, $3, $4, TRUE, FALSE)
		RETURNING updated_at
	`, agent.ID, agent.Name, agent.Phone, agent.VehicleType).Scan(&agent.UpdatedAt)
}

func (r *PostgresRepository) UpdateLocation(agentID int, lat, lng float64) error {
	_, err := r.DB.Exec(`
		UPDATE delivery_agents
		SET lat = $1, lng = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
	`, lat, lng, agentID)
	return err
}

func (r *PostgresRepository) UpdateAvailability(agentID int, available bool) error {
	_, err := r.DB.Exec(`
		UPDATE delivery_agents
		SET is_available = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`, available, agentID)
	return err
}

// CandidatesNear returns agents eligible for assignment within radiusKm
// of the pickup point, distance computed here so callers only ever see
// pre-filtered candidates.
func (r *PostgresRepository) CandidatesNear(lat, lng, radiusKm float64) ([]domain.Candidate, error) {
	rows, err := r.DB.Query(`
		SELECT ` + agentColumns + `
		FROM delivery_agents
		WHERE is_active = TRUE
		  AND is_available = TRUE
		  AND is_on_delivery = FALSE
		  AND lat IS NOT NULL
		  AND lng IS NOT NULL
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		agent, err := scanAgent(rows)
		if err != nil {
			continue
		}
		distance := domain.Haversine(lat, lng, *agent.Lat, *agent.Lng)
		if distance > radiusKm*1000 {
			continue
		}
		candidates = append(candidates, domain.Candidate{Agent: *agent, DistanceMeters: distance})
	}
	return candidates, nil
}

// AssignAgent performs the match-then-assign write as one transaction:
// the order takes the agent only if still unassigned and live, and the
// agent flips to on-delivery only if still free. Either side failing
// rolls the whole assignment back.
func (r *PostgresRepository) AssignAgent(orderID, agentID int) (bool, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		UPDATE orders
		SET agent_id = $1, delivery_status = 'assigned'
		WHERE id = $2
		  AND agent_id IS NULL
		  AND status NOT IN ('delivered', 'cancelled', 'rejected')
	`, agentID, orderID)
	if err != nil {
		return false, err
	}
	if affected, err := result.RowsAffected(); err != nil || affected == 0 {
		return false, err
	}

	result, err = tx.Exec(`
		UPDATE delivery_agents
		SET is_on_delivery = TRUE, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		  AND is_active = TRUE
		  AND is_available = TRUE
		  AND is_on_delivery = FALSE
	`, agentID)
	if err != nil {
		return false, err
	}
	if affected, err := result.RowsAffected(); err != nil || affected == 0 {
		return false, err
	}

	return true, tx.Commit()
}

func (r *PostgresRepository) GetAssignment(orderID int) (int, domain.DeliveryStatus, error) {
	var agentID sql.NullInt64
	var status sql.NullString
	err := r.DB.QueryRow(
		"SELECT agent_id, delivery_status FROM orders WHERE id = $1", orderID,
	).Scan(&agentID, &status)
	if err != nil {
		return 0, "", err
	}
	if !agentID.Valid || !status.Valid {
		return 0, "", sql.ErrNoRows
	}
	return int(agentID.Int64), domain.DeliveryStatus(status.String), nil
}

// UpdateDeliveryStatus is the delivery-side conditional transition.
func (r *PostgresRepository) UpdateDeliveryStatus(orderID int, from, to domain.DeliveryStatus) (int64, error) {
	switch to {
	case domain.DeliveryDelivered:
		return r.completeDelivery(orderID, from)
	case domain.DeliveryRejected, domain.DeliveryCancelled:
		return r.releaseAssignment(orderID, from, to)
	}

	set := "delivery_status = $1"
	if to == domain.DeliveryPickedUp {
		set += ", picked_up_at = CURRENT_TIMESTAMP"
	}
	result, err := r.DB.Exec(
		fmt.Sprintf("UPDATE orders SET %s WHERE id = $2 AND delivery_status = $3", set),
		to, orderID, from)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// completeDelivery finishes both machines at once: delivery and order
// status reach delivered, the agent is freed and credited.
func (r *PostgresRepository) completeDelivery(orderID int, from domain.DeliveryStatus) (int64, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		UPDATE orders
		SET delivery_status = 'delivered', status = 'delivered', delivered_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND delivery_status = $2
	`, orderID, from)
	if err != nil {
		return 0, err
	}
	affected, err := result.RowsAffected()
	if err != nil || affected == 0 {
		return affected, err
	}

	if _, err := tx.Exec(`
		UPDATE delivery_agents SET
			is_on_delivery = FALSE,
			total_deliveries = total_deliveries + 1,
			total_earnings = total_earnings + (SELECT total_amount FROM orders WHERE id = $1),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = (SELECT agent_id FROM orders WHERE id = $1)
	`, orderID); err != nil {
		return 0, err
	}

	return affected, tx.Commit()
}

// releaseAssignment ends the delivery leg without completing the order:
// the agent is freed and the order becomes assignable again.
func (r *PostgresRepository) releaseAssignment(orderID int, from, to domain.DeliveryStatus) (int64, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		UPDATE delivery_agents
		SET is_on_delivery = FALSE, updated_at = CURRENT_TIMESTAMP
		WHERE id = (SELECT agent_id FROM orders WHERE id = $1)
	`, orderID); err != nil {
		return 0, err
	}

	result, err := tx.Exec(`
		UPDATE orders
		SET delivery_status = $1, agent_id = NULL
		WHERE id = $2 AND delivery_status = $3
	`, to, orderID, from)
	if err != nil {
		return 0, err
	}
	affected, err := result.RowsAffected()
	if err != nil || affected == 0 {
		return affected, err
	}

	return affected, tx.Commit()
}

// ReconcileAgentFlags clears on-delivery flags with no live order behind
// them. Repair job for drift left by failures between the two writes.
func (r *PostgresRepository) ReconcileAgentFlags() (int64, error) {
	result, err := r.DB.Exec(`
		UPDATE delivery_agents a
		SET is_on_delivery = FALSE, updated_at = CURRENT_TIMESTAMP
		WHERE a.is_on_delivery = TRUE
		  AND NOT EXISTS (
			SELECT 1 FROM orders o
			WHERE o.agent_id = a.id
			  AND o.status NOT IN ('delivered', 'cancelled', 'rejected')
		  )
	`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) AgentStats(agentID int) (*domain.AgentStats, error) {
	var stats domain.AgentStats
	err := r.DB.QueryRow(`
		SELECT id, rating, rating_count, total_deliveries, total_earnings
		FROM delivery_agents WHERE id = $1
	`, agentID).Scan(&stats.AgentID, &stats.Rating, &stats.RatingCount,
		&stats.TotalDeliveries, &stats.TotalEarnings)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS delivery_agents (
			id INT PRIMARY KEY,
			name TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			vehicle_type TEXT NOT NULL DEFAULT 'bike',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			is_available BOOLEAN NOT NULL DEFAULT FALSE,
			is_on_delivery BOOLEAN NOT NULL DEFAULT FALSE,
			lat DOUBLE PRECISION,
			lng DOUBLE PRECISION,
			rating NUMERIC(3,2) NOT NULL DEFAULT 0,
			rating_count INT NOT NULL DEFAULT 0,
			total_deliveries INT NOT NULL DEFAULT 0,
			total_earnings NUMERIC(12,2) NOT NULL DEFAULT 0,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
