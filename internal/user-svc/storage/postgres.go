package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"quickbite/internal/user-svc/domain"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation, used to map duplicate emails to a domain error.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *PostgresRepository) CreateUser(user *domain.User) error {
	return r.DB.QueryRow(`
		INSERT INTO users (name, email, password_hash, phone, address, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, user.Name, user.Email, user.PasswordHash, user.Phone, user.Address, user.Role).
		Scan(&user.ID, &user.CreatedAt)
}

const userColumns = `id, name, email, password_hash, COALESCE(phone, ''), COALESCE(address, ''), role, created_at`

func scanUser(row interface{ Scan(...interface{}) error }) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Phone, &user.Address, &user.Role, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) GetUser(id int) (*domain.User, error) {
	return scanUser(r.DB.QueryRow(
		"SELECT "+userColumns+" FROM users WHERE id = $1", id))
}

func (r *PostgresRepository) GetUserByEmail(email string) (*domain.User, error) {
	return scanUser(r.DB.QueryRow(
		"SELECT "+userColumns+" FROM users WHERE email = $1", email))
}

func (r *PostgresRepository) UpdateUser(user *domain.User) (int64, error) {
	result, err := r.DB.Exec(`
		UPDATE users
		SET name = $1, phone = $2, address = $3
		WHERE id = $4
	`, user.Name, user.Phone, user.Address, user.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			phone TEXT,
			address TEXT,
			role TEXT NOT NULL DEFAULT 'customer',
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
