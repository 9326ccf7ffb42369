package domain

import "time"

// User represents a registered user of the tracker. Users are created on
// registration and are never mutated or deleted afterwards. Username and
// email are each unique within the user directory (case-sensitive).
type User struct {
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName,omitempty"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}
