package store

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func (s *Store) CreateUser(ctx context.Context, p CreateUserParams) (User, error) {
	id := NewID()
	row := s.Pool.QueryRow(ctx, `
		INSERT INTO users (id, username, email, password_hash, balance)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, username, email, password_hash, balance, created_at, updated_at
	`, id, p.Username, p.Email, p.PasswordHash, p.Balance)
	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Balance, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return User{}, mapUniqueViolation(err)
	}
	return u, nil
}

func (s *Store) GetUserByID(ctx context.Context, id string) (User, error) {
	row := s.Pool.QueryRow(ctx, `
		SELECT id, username, email, password_hash, balance, created_at, updated_at
		FROM users WHERE id = $1
	`, id)
	return scanUser(row)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := s.Pool.QueryRow(ctx, `
		SELECT id, username, email, password_hash, balance, created_at, updated_at
		FROM users WHERE email = $1
	`, email)
	return scanUser(row)
}

func (s *Store) GetUserBalance(ctx context.Context, id string) (int64, error) {
	row := s.Pool.QueryRow(ctx, `SELECT balance FROM users WHERE id = $1`, id)
	var bal int64
	if err := row.Scan(&bal); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return bal, nil
}

// EnsureUser inserts a user if the email is not taken yet. Used for
// env-driven demo seeding in main.
func (s *Store) EnsureUser(ctx context.Context, p CreateUserParams) error {
	_, err := s.Pool.Exec(ctx, `
		INSERT INTO users (id, username, email, password_hash, balance)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING
	`, NewID(), p.Username, p.Email, p.PasswordHash, p.Balance)
	return err
}

func scanUser(row pgx.Row) (User, error) {
	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Balance, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if strings.Contains(pgErr.ConstraintName, "email") {
			return ErrEmailTaken
		}
		return ErrUsernameTaken
	}
	return err
}
