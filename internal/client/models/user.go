// Package models holds the data shapes exchanged with the GoBarber API and
// kept by the client session.
package models

// User is the account payload returned by the API. The client never
// validates or mutates it.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// Credentials are the sign-in input. They are never persisted.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpData is the registration input sent to POST /users.
type SignUpData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
