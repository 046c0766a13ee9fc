package models

// Vote marks a user's upvote of a link. At most one vote exists per
// (link, user) pair; the store enforces this with a unique index.
type Vote struct {
	ID     int64
	LinkID int64
	UserID int64
}
