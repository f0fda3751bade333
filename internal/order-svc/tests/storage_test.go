package tests

import (
	"database/sql"
	"testing"

	"quickbite/internal/order-svc/domain"
	"quickbite/internal/order-svc/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestPostgresRepository_MenuSnapshotSkipsUnknownItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)

	mock.ExpectQuery(`SELECT id, name, price, is_available`).
		WithArgs(1, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "is_available"}).
			AddRow(1, "Margherita", 9.5, true))
	mock.ExpectQuery(`SELECT id, name, price, is_available`).
		WithArgs(999, 10).
		WillReturnError(sql.ErrNoRows)

	snapshot, err := repo.MenuSnapshot(10, []int{1, 999})
	assert.NoError(t, err)
	assert.Contains(t, snapshot, 1)
	assert.NotContains(t, snapshot, 999)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_UpdateStatusIsConditional(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)

	mock.ExpectExec(`UPDATE orders SET status = \$1, confirmed_at = CURRENT_TIMESTAMP WHERE id = \$2 AND status = \$3`).
		WithArgs(string(domain.StatusConfirmed), 5, string(domain.StatusPending)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.UpdateStatus(5, domain.StatusPending, domain.StatusConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_UpdateStatusLosesRace(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)

	mock.ExpectExec(`UPDATE orders SET status = \$1, cancelled_at = CURRENT_TIMESTAMP WHERE id = \$2 AND status = \$3`).
		WithArgs(string(domain.StatusCancelled), 5, string(domain.StatusPending)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := repo.UpdateStatus(5, domain.StatusPending, domain.StatusCancelled)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_MarkDeliveredIsTransactional(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE orders SET status = \$1, delivered_at = CURRENT_TIMESTAMP, delivery_status = 'delivered'`).
		WithArgs(string(domain.StatusDelivered), 5, string(domain.StatusOutForDelivery)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE delivery_agents SET`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	affected, err := repo.UpdateStatus(5, domain.StatusOutForDelivery, domain.StatusDelivered)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
