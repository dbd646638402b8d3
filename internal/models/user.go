package models

import "github.com/google/uuid"

// UserProjection is the minimal identity slice this component reads
// from the account store. TokenVersion is bumped there on password
// change or a global revoke.
type UserProjection struct {
	ID           uuid.UUID `db:"id"            json:"id"`
	Role         string    `db:"role"          json:"role"`
	IsActive     bool      `db:"is_active"     json:"isActive"`
	TokenVersion int64     `db:"token_version" json:"tokenVersion"`
}
