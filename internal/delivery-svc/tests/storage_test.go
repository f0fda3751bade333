package tests

import (
	"testing"
	"time"

	"quickbite/internal/delivery-svc/domain"
	"quickbite/internal/delivery-svc/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestPostgresRepository_CreateAgentKeepsCourierID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)

	mock.ExpectQuery(`INSERT INTO delivery_agents \(id, name, phone, vehicle_type, is_active, is_available\)`).
		WithArgs(42, "Bobby", "555-0100", "bike").
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(time.Now()))

	agent := domain.DeliveryAgent{ID: 42, Name: "Bobby", Phone: "555-0100", VehicleType: "bike"}
	assert.NoError(t, repo.CreateAgent(&agent))
	assert.Equal(t, 42, agent.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_AssignAgentBothSidesConditional(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE orders\s+SET agent_id = \$1, delivery_status = 'assigned'`).
		WithArgs(7, 42).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE delivery_agents\s+SET is_on_delivery = TRUE`).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assigned, err := repo.AssignAgent(42, 7)
	assert.NoError(t, err)
	assert.True(t, assigned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_AssignAgentOrderAlreadyTaken(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE orders\s+SET agent_id = \$1, delivery_status = 'assigned'`).
		WithArgs(7, 42).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	assigned, err := repo.AssignAgent(42, 7)
	assert.NoError(t, err)
	assert.False(t, assigned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_AssignAgentAgentNoLongerFree(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE orders\s+SET agent_id = \$1, delivery_status = 'assigned'`).
		WithArgs(7, 42).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE delivery_agents\s+SET is_on_delivery = TRUE`).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	assigned, err := repo.AssignAgent(42, 7)
	assert.NoError(t, err)
	assert.False(t, assigned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_CompleteDeliveryIsTransactional(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE orders\s+SET delivery_status = 'delivered', status = 'delivered'`).
		WithArgs(42, string(domain.DeliveryArrivedAtCustomer)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE delivery_agents SET`).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	affected, err := repo.UpdateDeliveryStatus(42, domain.DeliveryArrivedAtCustomer, domain.DeliveryDelivered)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_RejectReleasesAssignment(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE delivery_agents\s+SET is_on_delivery = FALSE`).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE orders\s+SET delivery_status = \$1, agent_id = NULL`).
		WithArgs(string(domain.DeliveryRejected), 42, string(domain.DeliveryAssigned)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	affected, err := repo.UpdateDeliveryStatus(42, domain.DeliveryAssigned, domain.DeliveryRejected)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_PickedUpStampsTimestamp(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)

	mock.ExpectExec(`UPDATE orders SET delivery_status = \$1, picked_up_at = CURRENT_TIMESTAMP WHERE id = \$2 AND delivery_status = \$3`).
		WithArgs(string(domain.DeliveryPickedUp), 42, string(domain.DeliveryArrivedAtRestaurant)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.UpdateDeliveryStatus(42, domain.DeliveryArrivedAtRestaurant, domain.DeliveryPickedUp)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ReconcileAgentFlags(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)

	mock.ExpectExec(`UPDATE delivery_agents a\s+SET is_on_delivery = FALSE`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	repaired, err := repo.ReconcileAgentFlags()
	assert.NoError(t, err)
	assert.Equal(t, int64(3), repaired)
	assert.NoError(t, mock.ExpectationsWereMet())
}
