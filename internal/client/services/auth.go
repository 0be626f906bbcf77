// Package services contains application services for the SpicesLink client:
// authentication, price tracking, and shop discovery. Services orchestrate
// the API client and the session/catalog store; they own no state.
package services

import (
	"context"
	"fmt"

	"github.com/Abeygunawardhanahs/spiceslink/internal/client/api"
	"github.com/Abeygunawardhanahs/spiceslink/internal/client/models"
	"github.com/Abeygunawardhanahs/spiceslink/internal/client/store"
)

// AuthService defines the login/registration operations for the CLI.
//
// Contract:
//   - Login: authenticate against the server and populate the session store.
//   - Register: create a buyer account; seed the local catalog from the
//     collected product names on success.
//   - Logout: clear the session, in memory and persisted. The token is not
//     invalidated server-side.
//   - Ping: check server liveness.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) (*models.User, error)
	Register(ctx context.Context, reg models.Registration) (string, error)
	Logout(ctx context.Context)
	Ping(ctx context.Context) error
}

type authService struct {
	client api.Client
	store  *store.Store
}

// NewAuthService constructs an AuthService bound to the given API client
// and store.
func NewAuthService(client api.Client, st *store.Store) AuthService {
	return &authService{client: client, store: st}
}

// Login authenticates a buyer. On success the returned user and token are
// placed in the store (which persists them best-effort) and an initial
// product fetch is triggered.
func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	user, token, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	a.store.SetUser(ctx, *user)
	a.store.SetToken(ctx, token)
	a.store.FetchProducts(ctx, "", "")

	return user, nil
}

// Register creates a buyer account and returns the new user id. The session
// remains anonymous; the caller is expected to proceed to login.
func (a *authService) Register(ctx context.Context, reg models.Registration) (string, error) {
	userID, err := a.client.Register(ctx, reg)
	if err != nil {
		return "", fmt.Errorf("registration error: %w", err)
	}

	if len(reg.ProductNames) > 0 {
		a.store.SeedFromRegistration(reg.ProductNames)
	}
	return userID, nil
}

func (a *authService) Logout(ctx context.Context) {
	a.store.ClearSession(ctx)
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
