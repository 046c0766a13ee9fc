package models

import "time"

// Link is a shared URL with a description, owned by exactly one user.
// Immutable after creation.
type Link struct {
	ID          int64
	URL         string
	Description string
	PostedBy    int64
	CreatedAt   time.Time
}
