package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is one rotation generation of a logical login. SessionID is
// assigned at login and survives every rotation; TokenHash changes on
// each one.
type Session struct {
	ID                uuid.UUID `db:"id"                  json:"id"`
	UserID            uuid.UUID `db:"user_id"             json:"userId"`
	SessionID         uuid.UUID `db:"session_id"          json:"sessionId"`
	TokenHash         string    `db:"token_hash"          json:"-"`
	IssuedVersion     int64     `db:"issued_version"      json:"-"`
	IP                string    `db:"ip"                  json:"ip"`
	UserAgent         string    `db:"user_agent"          json:"userAgent"`
	DeviceFingerprint string    `db:"device_fingerprint"  json:"deviceFingerprint"`
	DeviceLabel       string    `db:"device_label"        json:"deviceLabel"`
	IsRevoked         bool      `db:"is_revoked"          json:"isRevoked"`
	CreatedAt         time.Time `db:"created_at"          json:"createdAt"`
	LastUsedAt        time.Time `db:"last_used_at"        json:"lastUsedAt"`
	LastActivityAt    time.Time `db:"last_activity_at"    json:"lastActivityAt"`
	ExpiresAt         time.Time `db:"expires_at"          json:"expiresAt"`
	AbsoluteExpiresAt time.Time `db:"absolute_expires_at" json:"absoluteExpiresAt"`
}
