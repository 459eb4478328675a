package auth

import "time"

const (
	DefaultRole = "HR"

	MaxFullNameLength = 100
	MaxEmailLength    = 120
	MaxRoleLength     = 50
)

type User struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Role     string
}

type Session struct {
	Token        string    `json:"token"`
	ExpiresAtUTC time.Time `json:"expiresAtUtc"`
}
