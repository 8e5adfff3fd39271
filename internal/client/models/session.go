package models

// Session is the authenticated token and user pair.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// IsZero reports whether s holds no session.
func (s Session) IsZero() bool {
	return s.Token == ""
}
