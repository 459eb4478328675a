package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"ems/internal/domain/validate"
)

type Service struct {
	store  StoreAPI
	tokens *TokenIssuer
	now    func() time.Time
	newID  func() string
}

func NewService(store StoreAPI, tokens *TokenIssuer) *Service {
	return &Service{
		store:  store,
		tokens: tokens,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = normalizeEmail(in.Email)
	in.Role = strings.TrimSpace(in.Role)

	v := validate.New()
	v.Required("fullName", in.FullName)
	v.Required("email", in.Email)
	v.MaxLength("fullName", in.FullName, MaxFullNameLength)
	v.MaxLength("email", in.Email, MaxEmailLength)
	v.MinLength("password", in.Password, MinPasswordLength)
	v.Check(len(in.Password) <= MaxPasswordBytes, "password", "password must be at most 72 bytes")
	v.MaxLength("role", in.Role, MaxRoleLength)
	if err := v.Err(); err != nil {
		return User{}, err
	}

	taken, err := s.store.EmailExists(ctx, in.Email)
	if err != nil {
		return User{}, err
	}
	if taken {
		return User{}, ErrEmailTaken
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return User{}, err
	}
	role := in.Role
	if role == "" {
		role = DefaultRole
	}
	user := User{
		ID:           s.newID(),
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    s.now(),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Login never tells the caller which part of the credentials was wrong.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	email = normalizeEmail(email)

	v := validate.New()
	v.Required("email", email)
	v.Check(password != "", "password", "password is required")
	if err := v.Err(); err != nil {
		return Session{}, err
	}

	user, err := s.store.FindByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, err
	}
	if !user.IsActive {
		slog.Warn("login attempt for inactive user", "userId", user.ID)
		return Session{}, ErrInvalidCredentials
	}
	if err := CheckPassword(user.PasswordHash, password); err != nil {
		return Session{}, ErrInvalidCredentials
	}
	return s.tokens.Mint(user)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
