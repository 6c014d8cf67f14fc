package service

import (
	"context"
	"testing"
	"time"

	"ycliu87/Car-Garage/internal/api/models"
	"ycliu87/Car-Garage/internal/api/repository"

	"github.com/stretchr/testify/require"
)

func newAuthService(ttl time.Duration) AuthService {
	tokens := NewTokenManager([]byte("test-secret"), ttl)
	return NewAuthService(repository.NewMemoryUserRepository(), tokens)
}

func aliceRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		Username: "alice",
		Name:     "Alice",
		Password: "hunter22",
		Email:    "a@x.com",
	}
}

func TestAuthService_RegisterDuplicateUsername(t *testing.T) {
	svc := newAuthService(time.Hour)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, aliceRequest()))

	dup := aliceRequest()
	dup.Email = "other@x.com"
	err := svc.Register(ctx, dup)
	require.ErrorIs(t, err, models.ErrConflict)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(time.Hour)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, aliceRequest()))

	bob := &models.RegisterRequest{
		Username: "bob",
		Name:     "Bob",
		Password: "hunter22",
		Email:    "a@x.com",
	}
	err := svc.Register(ctx, bob)
	require.ErrorIs(t, err, models.ErrConflict)
}

func TestAuthService_RegisterInvalidForm(t *testing.T) {
	svc := newAuthService(time.Hour)

	req := aliceRequest()
	req.Email = "not-an-email"
	err := svc.Register(context.Background(), req)
	require.ErrorIs(t, err, models.ErrConflict)
}

func TestAuthService_LoginRoundTrip(t *testing.T) {
	svc := newAuthService(time.Hour)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, aliceRequest()))

	token, err := svc.Login(ctx, &models.LoginRequest{Username: "alice", Password: "hunter22"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := svc.CurrentUser(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	require.Empty(t, user.HashedPassword, "profile record must not carry the hash")
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc := newAuthService(time.Hour)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, aliceRequest()))

	_, err := svc.Login(ctx, &models.LoginRequest{Username: "alice", Password: "wrong"})
	require.ErrorIs(t, err, models.ErrAuthFailed)
}

func TestAuthService_LoginUnknownUser(t *testing.T) {
	svc := newAuthService(time.Hour)

	_, err := svc.Login(context.Background(), &models.LoginRequest{Username: "nobody", Password: "whatever"})
	require.ErrorIs(t, err, models.ErrAuthFailed)
}

func TestAuthService_CurrentUserExpiredToken(t *testing.T) {
	// A negative TTL issues tokens that are already past their expiry,
	// standing in for a token older than the session window.
	svc := newAuthService(-1 * time.Minute)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, aliceRequest()))

	token, err := svc.Login(ctx, &models.LoginRequest{Username: "alice", Password: "hunter22"})
	require.NoError(t, err)

	_, err = svc.CurrentUser(ctx, token)
	require.ErrorIs(t, err, models.ErrUnauthenticated)
}

func TestAuthService_CurrentUserGarbageToken(t *testing.T) {
	svc := newAuthService(time.Hour)

	_, err := svc.CurrentUser(context.Background(), "not-a-token")
	require.ErrorIs(t, err, models.ErrUnauthenticated)
}
