package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/model"
)

func authFixture(t *testing.T, active bool) (*AuthService, *model.User) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	u := &model.User{
		Email:        "manager@fleet.local",
		PasswordHash: string(hash),
		FullName:     "Fleet Manager",
		Role:         model.RoleFleetManager,
		Active:       active,
	}
	svc := NewAuthService(newStubUserRepo(u), "test-secret", time.Hour, 24*time.Hour)
	return svc, u
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc, u := authFixture(t, true)

	pair, err := svc.Login(context.Background(), dto.LoginRequest{Email: u.Email, Password: "secret123"})
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := svc.Parse(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "fleet_manager", claims.Role)
	assert.Equal(t, "access", claims.TokenType)

	claims, err = svc.Parse(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims.TokenType)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, u := authFixture(t, true)
	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: u.Email, Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := authFixture(t, true)
	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "nobody@fleet.local", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	svc, u := authFixture(t, false)
	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: u.Email, Password: "secret123"})
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, u := authFixture(t, true)

	pair, err := svc.Login(context.Background(), dto.LoginRequest{Email: u.Email, Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: pair.AccessToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshRotatesPair(t *testing.T) {
	svc, u := authFixture(t, true)

	pair, err := svc.Login(context.Background(), dto.LoginRequest{Email: u.Email, Password: "secret123"})
	require.NoError(t, err)

	next, err := svc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: pair.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, next.AccessToken)
	assert.Equal(t, u.Email, next.User.Email)
}

func TestParseGarbage(t *testing.T) {
	svc, _ := authFixture(t, true)
	_, err := svc.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
