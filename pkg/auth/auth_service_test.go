package auth

import (
	"context"
	"testing"
	"time"

	"recipe-box/domain"
	"recipe-box/internal/utils"
	"recipe-box/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, enabled bool) (AuthService, jwt.JWTService) {
	t.Helper()
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)

	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	creds := Credentials{Enabled: enabled, Username: "chef", PasswordHash: hash}
	return NewAuthService(creds, jwtService, utils.InitValidator()), jwtService
}

func TestLoginIssuesToken(t *testing.T) {
	svc, jwtService := newTestService(t, true)

	res, err := svc.Login(context.Background(), domain.LoginRequest{Username: "chef", Password: "hunter2"})
	require.NoError(t, err)
	assert.EqualValues(t, 3600, res.ExpiresIn)

	user, err := jwtService.GetUserByToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "chef", user)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestService(t, true)

	_, err := svc.Login(context.Background(), domain.LoginRequest{Username: "chef", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), domain.LoginRequest{Username: "cook", Password: "hunter2"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), domain.LoginRequest{Username: "chef"})
	assert.True(t, domain.IsValidation(err))
}

func TestLoginDisabled(t *testing.T) {
	svc, _ := newTestService(t, false)

	_, err := svc.Login(context.Background(), domain.LoginRequest{Username: "chef", Password: "hunter2"})
	assert.ErrorIs(t, err, domain.ErrAuthDisabled)
}

func TestTokenFromOtherSecretIsInvalid(t *testing.T) {
	token, err := jwt.NewJWTService("one", time.Hour).GenerateToken("chef")
	require.NoError(t, err)

	_, err = jwt.NewJWTService("two", time.Hour).GetUserByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestExpiredToken(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", -time.Minute)
	token, err := jwtService.GenerateToken("chef")
	require.NoError(t, err)

	_, err = jwtService.GetUserByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}
