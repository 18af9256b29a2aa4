package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ailiteracy/internal/config"
)

func newTestAuth(password string) *AuthService {
	return NewAuthService(&config.Config{
		AccessPassword: password,
		JWTSecret:      "test-secret",
	})
}

func TestVerifyIssuesToken(t *testing.T) {
	svc := newTestAuth("hunter2")

	resp, err := svc.Verify("hunter2")
	require.NoError(t, err)
	assert.True(t, resp.OK)
	require.NotEmpty(t, resp.Token)

	claims, err := svc.ValidateAccessToken(resp.Token)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ClientID)
}

func TestVerifyWrongPassword(t *testing.T) {
	svc := newTestAuth("hunter2")

	_, err := svc.Verify("wrong")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestVerifyDisabledWithoutPassword(t *testing.T) {
	svc := newTestAuth("")

	assert.False(t, svc.Enabled())
	_, err := svc.Verify("anything")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestValidateAccessTokenRejectsGarbage(t *testing.T) {
	svc := newTestAuth("hunter2")

	_, err := svc.ValidateAccessToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAccessTokenRejectsForeignSecret(t *testing.T) {
	issuer := newTestAuth("hunter2")
	resp, err := issuer.Verify("hunter2")
	require.NoError(t, err)

	other := NewAuthService(&config.Config{AccessPassword: "hunter2", JWTSecret: "different"})
	_, err = other.ValidateAccessToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
