// Package models contains the persistent record kinds of the link-sharing
// domain. Records are owned by the repository layer; handlers hold only
// transient references for the duration of a request.
package models

import "time"

// User is a registered account. PasswordHash is a bcrypt hash; the plaintext
// password is never stored. Users are created by signup and never mutated or
// deleted by this subsystem.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
