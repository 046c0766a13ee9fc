package models

// AuthPayload bundles an issued token with the associated user record.
// Returned by signup and login; never persisted.
type AuthPayload struct {
	Token string
	User  *User
}
