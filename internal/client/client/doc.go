// Package client contains the transport half of the GoBarber terminal client.
//
// # Overview
//
// The package provides:
//  1. The API contract (see the Client interface): CreateSession, CreateUser
//     and ListProviders against the GoBarber REST API.
//  2. A net/http implementation (see HTTPClient). Authentication is applied
//     per request by a RoundTripper that reads the current token from a
//     TokenSource, so no header state lives on the client itself.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Failures map to sentinel errors matched with errors.Is: ErrUnavailable,
// ErrUnauthorized, ErrBadRequest, ErrUnexpectedResponse. Non-2xx responses
// are returned as *APIError, which unwraps to the matching sentinel.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation; each request is also bounded by
// the configured timeout.
package client
