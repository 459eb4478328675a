package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	Email    string `json:"email"`
	Role     string `json:"role"`
	FullName string `json:"fullName"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() string {
	return c.Subject
}

type TokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
	Expiry   time.Duration
}

// TokenIssuer mints and verifies HS256 bearer tokens.
type TokenIssuer struct {
	cfg TokenConfig
	now func() time.Time
}

func NewTokenIssuer(cfg TokenConfig) *TokenIssuer {
	return &TokenIssuer{cfg: cfg, now: time.Now}
}

func (t *TokenIssuer) WithClock(now func() time.Time) *TokenIssuer {
	t.now = now
	return t
}

func (t *TokenIssuer) Mint(user User) (Session, error) {
	issuedAt := t.now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(t.cfg.Expiry)

	claims := Claims{
		Email:    user.Email,
		Role:     user.Role,
		FullName: user.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    t.cfg.Issuer,
			Audience:  jwt.ClaimStrings{t.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(t.cfg.Secret))
	if err != nil {
		return Session{}, err
	}
	return Session{Token: signed, ExpiresAtUTC: expiresAt}, nil
}

// Parse checks signature, method, issuer, audience and expiry.
func (t *TokenIssuer) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(t.cfg.Secret), nil
	},
		jwt.WithIssuer(t.cfg.Issuer),
		jwt.WithAudience(t.cfg.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, ErrInvalidToken.WithCause(err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
