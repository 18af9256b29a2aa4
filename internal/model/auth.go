package model

import "github.com/golang-jwt/jwt/v5"

// AuthRequest is the shared-password verification request
type AuthRequest struct {
	Password string `json:"password"`
}

// AuthResponse reports whether the shared password matched. Token is an
// access token for the session endpoints when verification succeeds.
type AuthResponse struct {
	OK    bool   `json:"ok"`
	Token string `json:"token,omitempty"`
}

// AccessClaims is the JWT payload issued after password verification
type AccessClaims struct {
	ClientID string `json:"clientId"`
	jwt.RegisteredClaims
}
