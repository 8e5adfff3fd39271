// Package common contains shared constants and sentinel errors used across
// GoBarber client components.
package common

const (
	// AuthorizationHeaderName is the HTTP header carrying the session token.
	AuthorizationHeaderName = "Authorization"

	// BearerScheme prefixes the token in the Authorization header value.
	BearerScheme = "Bearer"

	// RequestIDHeaderName is the HTTP header used to correlate a request
	// with client-side log lines.
	RequestIDHeaderName = "X-Request-ID"
)

// Fixed storage keys holding the persisted session.
const (
	TokenStorageKey = "@GoBarber:token"
	UserStorageKey  = "@GoBarber:user"
)
