package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	md "github.com/JMURv/hr-auth/internal/models"
	"github.com/JMURv/hr-auth/internal/repo"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// CreateSession inserts a new rotation row. The unique index on
// token_hash is what makes concurrent rotation safe: the second writer
// of the same hash gets ErrAlreadyExists instead of a duplicate row.
func (r *Repository) CreateSession(ctx context.Context, s *md.Session) (*md.Session, error) {
	const op = "sessions.CreateSession.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := r.conn.QueryRowxContext(
		ctx,
		sessionCreateQ,
		s.UserID,
		s.SessionID,
		s.TokenHash,
		s.IssuedVersion,
		s.IP,
		s.UserAgent,
		s.DeviceFingerprint,
		s.DeviceLabel,
		s.LastUsedAt,
		s.LastActivityAt,
		s.ExpiresAt,
		s.AbsoluteExpiresAt,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, repo.ErrAlreadyExists
		}

		span.SetTag("error", true)
		zap.L().Error("failed to create session", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return s, nil
}

// FindActiveByHash is the single mutation point for activity tracking:
// a matching row has last_used_at and last_activity_at bumped in the
// same statement that checks revocation, sliding, absolute and idle
// windows, so there is no gap between "check" and "use". A miss is
// classified afterwards for audit logging.
func (r *Repository) FindActiveByHash(
	ctx context.Context,
	hash string,
	userID uuid.UUID,
	now time.Time,
	idleTimeout time.Duration,
) (*md.Session, error) {
	const op = "sessions.FindActiveByHash.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Session{}
	err := r.conn.QueryRowxContext(
		ctx, sessionClaimActiveQ, hash, userID, now, now.Add(-idleTimeout),
	).StructScan(res)
	if err == nil {
		return res, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		span.SetTag("error", true)
		zap.L().Error("failed to claim session", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return nil, r.classifyMiss(ctx, hash, userID, now, idleTimeout)
}

func (r *Repository) classifyMiss(
	ctx context.Context,
	hash string,
	userID uuid.UUID,
	now time.Time,
	idleTimeout time.Duration,
) error {
	s := &md.Session{}
	err := r.conn.QueryRowxContext(ctx, sessionGetByHashQ, hash, userID).StructScan(s)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repo.ErrNotFound
		}
		return err
	}

	switch {
	case s.IsRevoked:
		return repo.ErrRevoked
	case !now.Before(s.AbsoluteExpiresAt):
		return repo.ErrAbsoluteExpired
	case now.Sub(s.LastActivityAt) >= idleTimeout:
		return repo.ErrIdleExpired
	case !now.Before(s.ExpiresAt):
		return repo.ErrSlidingExpired
	default:
		// Lost a race against a concurrent claim of the same hash.
		return repo.ErrNotFound
	}
}

// RotateSession atomically inserts the replacement row and revokes the
// rotated-away one. Either both land or neither does, so a crash can
// never leave a legitimate login with zero usable rows. The revoke
// must consume the predecessor: zero affected rows means a concurrent
// rotation already revoked it, and committing anyway would leave two
// live rows for one session, so the transaction is abandoned instead.
func (r *Repository) RotateSession(ctx context.Context, oldHash string, next *md.Session) (*md.Session, error) {
	const op = "sessions.RotateSession.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	err = tx.QueryRowxContext(
		ctx,
		sessionCreateQ,
		next.UserID,
		next.SessionID,
		next.TokenHash,
		next.IssuedVersion,
		next.IP,
		next.UserAgent,
		next.DeviceFingerprint,
		next.DeviceLabel,
		next.LastUsedAt,
		next.LastActivityAt,
		next.ExpiresAt,
		next.AbsoluteExpiresAt,
	).Scan(&next.ID, &next.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, repo.ErrAlreadyExists
		}

		span.SetTag("error", true)
		zap.L().Error("failed to insert rotated session", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	res, err := tx.ExecContext(ctx, sessionRevokeByHashQ, oldHash)
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to revoke rotated session", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	aff, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}

	if aff == 0 {
		return nil, repo.ErrAlreadyExists
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return next, nil
}

// ExtendSliding pushes the sliding window forward for the active row
// of a logical session. The absolute ceiling is never touched.
func (r *Repository) ExtendSliding(ctx context.Context, sessionID uuid.UUID, newExpiresAt time.Time) error {
	const op = "sessions.ExtendSliding.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := r.conn.ExecContext(ctx, sessionExtendSlidingQ, sessionID, newExpiresAt); err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to extend session", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}

// Revokes are idempotent: the is_revoked = FALSE predicate turns a
// second revoke of the same row into a zero-row no-op.
func (r *Repository) RevokeByHash(ctx context.Context, hash string) error {
	const op = "sessions.RevokeByHash.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := r.conn.ExecContext(ctx, sessionRevokeByHashQ, hash); err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to revoke session by hash", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}

func (r *Repository) RevokeBySessionID(ctx context.Context, sessionID uuid.UUID) error {
	const op = "sessions.RevokeBySessionID.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := r.conn.ExecContext(ctx, sessionRevokeBySessionIDQ, sessionID); err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to revoke session", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}

// RevokeForUserBySessionID scopes the revoke to the owning user, for
// the user-facing security page.
func (r *Repository) RevokeForUserBySessionID(ctx context.Context, userID, sessionID uuid.UUID) error {
	const op = "sessions.RevokeForUserBySessionID.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := r.conn.ExecContext(ctx, sessionRevokeForUserBySessionIDQ, sessionID, userID); err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to revoke user session", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}

func (r *Repository) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	const op = "sessions.RevokeAllForUser.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := r.conn.ExecContext(ctx, sessionRevokeAllForUserQ, userID); err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to revoke user sessions", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}

func (r *Repository) UpdateSessionLabel(ctx context.Context, userID, sessionID uuid.UUID, label string) error {
	const op = "sessions.UpdateSessionLabel.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, sessionUpdateLabelQ, sessionID, userID, label)
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to update session label", zap.String("op", op), zap.Error(err))
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

// Sweep permanently deletes rows that have been revoked or past their
// absolute ceiling for longer than the grace period.
func (r *Repository) Sweep(ctx context.Context, cutoff time.Time) (int64, error) {
	const op = "sessions.Sweep.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, sessionSweepQ, cutoff)
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to sweep sessions", zap.String("op", op), zap.Error(err))
		return 0, err
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	return deleted, nil
}

func (r *Repository) GetUserProjection(ctx context.Context, userID uuid.UUID) (*md.UserProjection, error) {
	const op = "sessions.GetUserProjection.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.UserProjection{}
	err := r.conn.QueryRowxContext(ctx, userProjectionQ, userID).StructScan(res)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}

		span.SetTag("error", true)
		zap.L().Error("failed to get user projection", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
