package auth

import (
	"context"

	"ems/internal/platform/querier"
)

const constraintUserEmail = "uq_users_email"

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	var found bool
	err := s.DB.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&found)
	return found, err
}

func (s *Store) CreateUser(ctx context.Context, user User) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO users (id, full_name, email, password_hash, role, is_active, created_at_utc)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
  `, user.ID, user.FullName, user.Email, user.PasswordHash, user.Role, user.IsActive, user.CreatedAt)
	if constraint, ok := querier.UniqueViolation(err); ok && constraint == constraintUserEmail {
		return ErrEmailTaken.WithCause(err)
	}
	return err
}

func (s *Store) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := s.DB.QueryRow(ctx, `
    SELECT id, full_name, email, password_hash, role, is_active, created_at_utc, updated_at_utc
    FROM users
    WHERE email = $1
  `, email).Scan(&user.ID, &user.FullName, &user.Email, &user.PasswordHash, &user.Role, &user.IsActive,
		&user.CreatedAt, &user.UpdatedAt)
	if querier.NoRows(err) {
		return User{}, ErrUserNotFound
	}
	return user, err
}
