// Package common defines shared constants and sentinel errors used across
// linkboard layers. Callers should use errors.Is/errors.As to match these
// values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Login errors. These two messages are caller-visible and must stay
	// distinct but fixed; nothing else about the stored credential leaks.
	ErrUserNotFound    = errors.New("no such user found")
	ErrInvalidPassword = errors.New("invalid password")

	// Signup errors.
	ErrEmailTaken   = errors.New("email already registered")
	ErrInvalidEmail = errors.New("invalid email address")

	// Vote errors.
	ErrLinkNotFound = errors.New("link does not exist")

	// Auth errors (invalid or malformed token, missing identity).
	ErrInvalidToken    = errors.New("invalid token")
	ErrUnauthenticated = errors.New("not authenticated")

	// Service-level errors (generic/internal flow control).
	ErrInternal = errors.New("internal error")
)

// DuplicateVoteError reports a second vote by the same user on the same link.
// It carries the link id so callers can act on it without parsing the message.
type DuplicateVoteError struct {
	LinkID int64
}

func (e *DuplicateVoteError) Error() string {
	return fmt.Sprintf("already voted for link: %d", e.LinkID)
}

// AuthorizationHeaderName is the HTTP header carrying the bearer token.
const AuthorizationHeaderName = "Authorization"
