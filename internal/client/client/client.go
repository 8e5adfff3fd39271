package client

import (
	"context"

	"github.com/dmitrijs2005/gobarber/internal/client/models"
)

// Client is the GoBarber API surface used by the screens and the session.
type Client interface {
	// CreateSession exchanges credentials for a token and user (POST /sessions).
	CreateSession(ctx context.Context, credentials models.Credentials) (models.Session, error)
	// CreateUser registers a new account (POST /users).
	CreateUser(ctx context.Context, data models.SignUpData) error
	// ListProviders returns the service providers (GET /providers).
	ListProviders(ctx context.Context) ([]models.Provider, error)
}

// TokenSource yields the token to authenticate the next request with.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// TokenSourceFunc adapts a plain function to TokenSource.
type TokenSourceFunc func() string

func (f TokenSourceFunc) Token() string { return f() }
