package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/faqforge/faqforge/pkg/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrEmailTaken = errors.New("email already exists")

// UserRepository is the concrete implementation for users.
type UserRepository struct {
	db *pgxpool.Pool
}

// Create inserts a new user and returns the new user's id.
func (r *UserRepository) Create(ctx context.Context, email, name, passwordHash string) (uuid.UUID, error) {
	id := uuid.New()
	const q = `
INSERT INTO users (user_id, email, name, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())
`
	_, err := r.db.Exec(ctx, q, id, email, name, passwordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		// unique_violation
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return uuid.Nil, ErrEmailTaken
		}
		return uuid.Nil, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

// GetByEmail returns a user by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	const q = `
SELECT user_id, email, name, password_hash, created_at, updated_at
FROM users
WHERE email = $1
`
	var u model.User
	row := r.db.QueryRow(ctx, q, email)
	if err := row.Scan(&u.UserID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, fmt.Errorf("user not found: %w", err)
		}
		return model.User{}, fmt.Errorf("scan user by email: %w", err)
	}
	return u, nil
}

// GetByID returns a user by id.
func (r *UserRepository) GetByID(ctx context.Context, userID uuid.UUID) (model.User, error) {
	const q = `
SELECT user_id, email, name, password_hash, created_at, updated_at
FROM users
WHERE user_id = $1
`
	var u model.User
	row := r.db.QueryRow(ctx, q, userID)
	if err := row.Scan(&u.UserID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, fmt.Errorf("user not found: %w", err)
		}
		return model.User{}, fmt.Errorf("scan user by id: %w", err)
	}
	return u, nil
}
