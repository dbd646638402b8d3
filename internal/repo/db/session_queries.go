package db

const sessionCreateQ = `
INSERT INTO sessions (
	user_id,
	session_id,
	token_hash,
	issued_version,
	ip,
	user_agent,
	device_fingerprint,
	device_label,
	last_used_at,
	last_activity_at,
	expires_at,
	absolute_expires_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id, created_at
`

const sessionClaimActiveQ = `
UPDATE sessions
SET last_used_at = $3, last_activity_at = $3
WHERE token_hash = $1
  AND user_id = $2
  AND is_revoked = FALSE
  AND expires_at > $3
  AND absolute_expires_at > $3
  AND last_activity_at > $4
RETURNING
	id,
	user_id,
	session_id,
	token_hash,
	issued_version,
	ip,
	user_agent,
	device_fingerprint,
	device_label,
	is_revoked,
	created_at,
	last_used_at,
	last_activity_at,
	expires_at,
	absolute_expires_at
`

const sessionGetByHashQ = `
SELECT
	id,
	user_id,
	session_id,
	token_hash,
	issued_version,
	ip,
	user_agent,
	device_fingerprint,
	device_label,
	is_revoked,
	created_at,
	last_used_at,
	last_activity_at,
	expires_at,
	absolute_expires_at
FROM sessions
WHERE token_hash = $1 AND user_id = $2
`

const sessionExtendSlidingQ = `
UPDATE sessions
SET expires_at = $2
WHERE session_id = $1 AND is_revoked = FALSE
`

const sessionRevokeByHashQ = `
UPDATE sessions
SET is_revoked = TRUE, revoked_at = NOW()
WHERE token_hash = $1 AND is_revoked = FALSE
`

const sessionRevokeBySessionIDQ = `
UPDATE sessions
SET is_revoked = TRUE, revoked_at = NOW()
WHERE session_id = $1 AND is_revoked = FALSE
`

const sessionRevokeForUserBySessionIDQ = `
UPDATE sessions
SET is_revoked = TRUE, revoked_at = NOW()
WHERE session_id = $1 AND user_id = $2 AND is_revoked = FALSE
`

const sessionRevokeAllForUserQ = `
UPDATE sessions
SET is_revoked = TRUE, revoked_at = NOW()
WHERE user_id = $1 AND is_revoked = FALSE
`

const sessionUpdateLabelQ = `
UPDATE sessions
SET device_label = $3
WHERE session_id = $1 AND user_id = $2 AND is_revoked = FALSE
`

const sessionSweepQ = `
DELETE FROM sessions
WHERE (is_revoked = TRUE AND revoked_at < $1)
   OR absolute_expires_at < $1
`

const userProjectionQ = `
SELECT id, role, is_active, token_version
FROM users
WHERE id = $1
`
