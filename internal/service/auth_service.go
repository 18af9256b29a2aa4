package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"ailiteracy/internal/config"
	"ailiteracy/internal/model"
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid or expired token")
)

// AuthService gates the API behind a single shared password. A successful
// verification issues a bearer token for the session endpoints.
type AuthService struct {
	accessPassword string
	jwtSecret      []byte
}

// NewAuthService creates a new auth service
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{
		accessPassword: cfg.AccessPassword,
		jwtSecret:      []byte(cfg.JWTSecret),
	}
}

// Enabled reports whether the shared password is configured. When disabled
// the access middleware passes everything through.
func (s *AuthService) Enabled() bool {
	return s.accessPassword != ""
}

// Verify checks the shared password and issues an access token
func (s *AuthService) Verify(password string) (*model.AuthResponse, error) {
	if !s.Enabled() || password != s.accessPassword {
		return nil, ErrInvalidPassword
	}

	claims := &model.AccessClaims{
		ClientID: "client_" + uuid.New().String()[:8],
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.AuthResponse{OK: true, Token: tokenString}, nil
}

// ValidateAccessToken validates an access JWT and returns its claims
func (s *AuthService) ValidateAccessToken(tokenString string) (*model.AccessClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.AccessClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
