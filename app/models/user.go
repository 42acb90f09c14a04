package models

import "time"

// User is one staff account in the credential store. The JSON field names
// match the on-disk users file, which maps username -> account details, so
// Username itself is the map key and is not serialized.
type User struct {
	Username  string `json:"-"`
	Password  string `json:"password"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt string `json:"created_at"`
}

// UserInfo is the listing view of an account, without the password hash.
type UserInfo struct {
	Username  string `json:"username"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt string `json:"created_at"`
}

// Session tracks one authenticated login.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry time.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
