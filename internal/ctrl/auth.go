package ctrl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JMURv/hr-auth/internal/auth/jwt"
	"github.com/JMURv/hr-auth/internal/dto"
	md "github.com/JMURv/hr-auth/internal/models"
	metrics "github.com/JMURv/hr-auth/internal/observability/metrics/prometheus"
	"github.com/JMURv/hr-auth/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type authCtrl interface {
	Login(ctx context.Context, req *dto.LoginRequest, d *dto.DeviceRequest) (*dto.TokenPair, error)
	Refresh(ctx context.Context, rawRefresh string, d *dto.DeviceRequest) (*dto.TokenPair, error)
	Logout(ctx context.Context, rawRefresh string)
	RevokeAllSessions(ctx context.Context, uid uuid.UUID) error
	ListActiveSessions(ctx context.Context, uid uuid.UUID, filters map[string]any) ([]*md.Session, error)
	RevokeSession(ctx context.Context, uid, sessionID uuid.UUID) error
	UpdateSessionLabel(ctx context.Context, uid, sessionID uuid.UUID, label string) error
	VerifyAccess(ctx context.Context, token string) (jwt.AccessClaims, error)
}

type authRepo interface {
	CreateSession(ctx context.Context, s *md.Session) (*md.Session, error)
	FindActiveByHash(ctx context.Context, hash string, userID uuid.UUID, now time.Time, idleTimeout time.Duration) (*md.Session, error)
	RotateSession(ctx context.Context, oldHash string, next *md.Session) (*md.Session, error)
	ExtendSliding(ctx context.Context, sessionID uuid.UUID, newExpiresAt time.Time) error
	RevokeByHash(ctx context.Context, hash string) error
	RevokeBySessionID(ctx context.Context, sessionID uuid.UUID) error
	RevokeForUserBySessionID(ctx context.Context, userID, sessionID uuid.UUID) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
	ListActiveForUser(ctx context.Context, userID uuid.UUID, now time.Time, filters map[string]any) ([]*md.Session, error)
	UpdateSessionLabel(ctx context.Context, userID, sessionID uuid.UUID, label string) error
	Sweep(ctx context.Context, cutoff time.Time) (int64, error)
	GetUserProjection(ctx context.Context, userID uuid.UUID) (*md.UserProjection, error)
}

const (
	sessionsCacheKey     = "sessions:%v"
	sessionsCachePattern = "sessions:%v*"
	sessionsCacheTime    = time.Minute * 5
)

// storeCtx bounds every persistence call so a hung store surfaces as
// a retryable outcome instead of blocking the request.
func (c *Controller) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.conf.StoreTimeout)
}

// wrapStore translates store failures that are not domain sentinels
// into ErrServiceUnavailable. An unreachable store is never treated as
// an invalid session.
func wrapStore(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repo.ErrNotFound),
		errors.Is(err, repo.ErrAlreadyExists),
		errors.Is(err, repo.ErrRevoked),
		errors.Is(err, repo.ErrSlidingExpired),
		errors.Is(err, repo.ErrAbsoluteExpired),
		errors.Is(err, repo.ErrIdleExpired):
		return err
	default:
		return ErrServiceUnavailable
	}
}

func (c *Controller) invalidateSessionsCache(ctx context.Context, uid uuid.UUID) {
	c.cache.InvalidateKeysByPattern(ctx, fmt.Sprintf(sessionsCachePattern, uid))
}

// Login issues an access/refresh pair for an already-authenticated
// operator. Credential verification lives in the account service; this
// component only reads the identity projection and refuses inactive
// accounts.
func (c *Controller) Login(
	ctx context.Context,
	req *dto.LoginRequest,
	d *dto.DeviceRequest,
) (*dto.TokenPair, error) {
	const op = "auth.Login.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	sctx, cancel := c.storeCtx(ctx)
	defer cancel()

	proj, err := c.repo.GetUserProjection(sctx, req.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, wrapStore(err)
	}

	if !proj.IsActive {
		return nil, ErrUnauthorized
	}

	now := c.clock.Now()
	access, err := c.au.IssueAccess(ctx, proj.ID, proj.Role)
	if err != nil {
		return nil, err
	}

	// Token-hash collisions are not expected; one retry with a fresh
	// session id covers the theoretical case.
	var refresh string
	for attempt := 0; attempt < 2; attempt++ {
		sid := uuid.New()
		absExp := now.Add(c.conf.AbsoluteTTL)

		refresh, err = c.au.IssueRefresh(ctx, proj.ID, proj.TokenVersion, sid, absExp)
		if err != nil {
			return nil, err
		}

		_, err = c.repo.CreateSession(
			sctx, &md.Session{
				UserID:            proj.ID,
				SessionID:         sid,
				TokenHash:         jwt.HashToken(refresh),
				IssuedVersion:     proj.TokenVersion,
				IP:                d.IP,
				UserAgent:         d.UA,
				DeviceFingerprint: d.Fingerprint,
				DeviceLabel:       d.Label,
				LastUsedAt:        now,
				LastActivityAt:    now,
				ExpiresAt:         now.Add(c.conf.RefreshTTL),
				AbsoluteExpiresAt: absExp,
			},
		)
		if err == nil {
			break
		}

		if !errors.Is(err, repo.ErrAlreadyExists) {
			return nil, wrapStore(err)
		}
	}

	if err != nil {
		return nil, ErrAlreadyExists
	}

	c.enforceDeviceLimit(sctx, proj.ID)
	c.invalidateSessionsCache(ctx, proj.ID)
	metrics.IncLogin()

	return &dto.TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh rotates a refresh credential: decode, absolute-ceiling
// check, identity and token-version checks, store validation, anomaly
// check, then an atomic swap of the old row for a new one carrying the
// same session id and ceiling.
func (c *Controller) Refresh(
	ctx context.Context,
	rawRefresh string,
	d *dto.DeviceRequest,
) (*dto.TokenPair, error) {
	const op = "auth.Refresh.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims, err := c.au.DecodeRefresh(ctx, rawRefresh)
	if err != nil {
		return nil, ErrUnauthorized
	}

	sctx, cancel := c.storeCtx(ctx)
	defer cancel()

	now := c.clock.Now()
	if !now.Before(time.Unix(claims.AbsExp, 0)) {
		// The ceiling is final: kill the whole session family before
		// reporting, so replays stop hitting the store.
		if err = c.repo.RevokeBySessionID(sctx, claims.SessionID); err != nil {
			zap.L().Warn(
				"failed to revoke ceiling-expired session",
				zap.String("op", op),
				zap.String("sid", claims.SessionID.String()),
				zap.Error(err),
			)
		}

		c.invalidateSessionsCache(ctx, claims.UID)
		metrics.IncRevocation("absolute_expired")
		return nil, ErrSessionExpired
	}

	proj, err := c.repo.GetUserProjection(sctx, claims.UID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, wrapStore(err)
	}

	if !proj.IsActive {
		return nil, ErrUnauthorized
	}

	if proj.TokenVersion != claims.Version {
		// Issued before a version-bumping event (password change,
		// global revoke): the session family is dead.
		if err = c.repo.RevokeBySessionID(sctx, claims.SessionID); err != nil {
			zap.L().Warn(
				"failed to revoke stale-version session",
				zap.String("op", op),
				zap.String("sid", claims.SessionID.String()),
				zap.Error(err),
			)
		}

		c.invalidateSessionsCache(ctx, claims.UID)
		metrics.IncRevocation("version_mismatch")
		return nil, ErrUnauthorized
	}

	oldHash := jwt.HashToken(rawRefresh)
	sess, err := c.repo.FindActiveByHash(sctx, oldHash, claims.UID, now, c.conf.IdleTimeout)
	if err != nil {
		return nil, c.mapSessionMiss(op, claims, err)
	}

	suspicious, err := c.isSuspicious(sctx, claims.UID, now, d)
	if err != nil {
		return nil, wrapStore(err)
	}

	if suspicious {
		zap.L().Warn(
			"anomalous refresh, revoking all sessions",
			zap.String("op", op),
			zap.String("uid", claims.UID.String()),
			zap.String("ip", d.IP),
		)

		if err = c.repo.RevokeAllForUser(sctx, claims.UID); err != nil {
			return nil, wrapStore(err)
		}

		c.invalidateSessionsCache(ctx, claims.UID)
		metrics.IncAnomalyTrip()
		return nil, ErrUnauthorized
	}

	access, err := c.au.IssueAccess(ctx, proj.ID, proj.Role)
	if err != nil {
		return nil, err
	}

	// Session id and absolute ceiling pass through unchanged; only the
	// sliding window is recomputed from now.
	refresh, err := c.au.IssueRefresh(ctx, proj.ID, proj.TokenVersion, sess.SessionID, sess.AbsoluteExpiresAt)
	if err != nil {
		return nil, err
	}

	_, err = c.repo.RotateSession(
		sctx, oldHash, &md.Session{
			UserID:            proj.ID,
			SessionID:         sess.SessionID,
			TokenHash:         jwt.HashToken(refresh),
			IssuedVersion:     proj.TokenVersion,
			IP:                d.IP,
			UserAgent:         d.UA,
			DeviceFingerprint: d.Fingerprint,
			DeviceLabel:       sess.DeviceLabel,
			LastUsedAt:        now,
			LastActivityAt:    now,
			ExpiresAt:         now.Add(c.conf.RefreshTTL),
			AbsoluteExpiresAt: sess.AbsoluteExpiresAt,
		},
	)
	if err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			// A concurrent caller rotated the same token first.
			zap.L().Info(
				"lost rotation race",
				zap.String("op", op),
				zap.String("sid", sess.SessionID.String()),
			)

			return nil, ErrUnauthorized
		}
		return nil, wrapStore(err)
	}

	c.enforceDeviceLimit(sctx, proj.ID)
	c.invalidateSessionsCache(ctx, proj.ID)
	metrics.IncRotation()

	return &dto.TokenPair{Access: access, Refresh: refresh}, nil
}

// mapSessionMiss collapses store-level terminal states into the two
// caller-visible outcomes while keeping the distinction in the audit
// log.
func (c *Controller) mapSessionMiss(op string, claims jwt.RefreshClaims, err error) error {
	zap.L().Info(
		"refresh rejected",
		zap.String("op", op),
		zap.String("uid", claims.UID.String()),
		zap.String("sid", claims.SessionID.String()),
		zap.String("reason", err.Error()),
	)

	switch {
	case errors.Is(err, repo.ErrAbsoluteExpired):
		metrics.IncRevocation("absolute_expired")
		return ErrSessionExpired
	case errors.Is(err, repo.ErrIdleExpired):
		metrics.IncRevocation("idle_expired")
		return ErrSessionExpired
	case errors.Is(err, repo.ErrRevoked), errors.Is(err, repo.ErrSlidingExpired), errors.Is(err, repo.ErrNotFound):
		return ErrUnauthorized
	default:
		return wrapStore(err)
	}
}

// Logout is idempotent by design: a malformed or already-dead token
// still yields success, only the revoke is attempted.
func (c *Controller) Logout(ctx context.Context, rawRefresh string) {
	const op = "auth.Logout.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	sctx, cancel := c.storeCtx(ctx)
	defer cancel()

	if err := c.repo.RevokeByHash(sctx, jwt.HashToken(rawRefresh)); err != nil {
		zap.L().Warn("failed to revoke session on logout", zap.String("op", op), zap.Error(err))
		return
	}

	if claims, err := c.au.DecodeRefresh(ctx, rawRefresh); err == nil {
		c.invalidateSessionsCache(ctx, claims.UID)
	}

	metrics.IncRevocation("logout")
}

// RevokeAllSessions is the "log out everywhere" entry point, also
// called by the account service on password change.
func (c *Controller) RevokeAllSessions(ctx context.Context, uid uuid.UUID) error {
	const op = "auth.RevokeAllSessions.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	sctx, cancel := c.storeCtx(ctx)
	defer cancel()

	if err := c.repo.RevokeAllForUser(sctx, uid); err != nil {
		return wrapStore(err)
	}

	c.invalidateSessionsCache(ctx, uid)
	metrics.IncRevocation("revoke_all")
	return nil
}

func (c *Controller) ListActiveSessions(
	ctx context.Context,
	uid uuid.UUID,
	filters map[string]any,
) ([]*md.Session, error) {
	const op = "auth.ListActiveSessions.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	// Only the unfiltered security-page read is cached; validity
	// decisions never consult the cache.
	cacheKey := fmt.Sprintf(sessionsCacheKey, uid)
	if len(filters) == 0 {
		cached := make([]*md.Session, 0, 8)
		if err := c.cache.GetToStruct(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	sctx, cancel := c.storeCtx(ctx)
	defer cancel()

	res, err := c.repo.ListActiveForUser(sctx, uid, c.clock.Now(), filters)
	if err != nil {
		return nil, wrapStore(err)
	}

	if len(filters) == 0 {
		c.cache.Set(ctx, sessionsCacheTime, cacheKey, res)
	}

	return res, nil
}

func (c *Controller) RevokeSession(ctx context.Context, uid, sessionID uuid.UUID) error {
	const op = "auth.RevokeSession.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	sctx, cancel := c.storeCtx(ctx)
	defer cancel()

	if err := c.repo.RevokeForUserBySessionID(sctx, uid, sessionID); err != nil {
		return wrapStore(err)
	}

	c.invalidateSessionsCache(ctx, uid)
	metrics.IncRevocation("revoke_one")
	return nil
}

func (c *Controller) UpdateSessionLabel(ctx context.Context, uid, sessionID uuid.UUID, label string) error {
	const op = "auth.UpdateSessionLabel.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	sctx, cancel := c.storeCtx(ctx)
	defer cancel()

	if err := c.repo.UpdateSessionLabel(sctx, uid, sessionID, label); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return wrapStore(err)
	}

	c.invalidateSessionsCache(ctx, uid)
	return nil
}

// VerifyAccess checks a bearer access token. Pure codec work, no
// store round-trip.
func (c *Controller) VerifyAccess(ctx context.Context, token string) (jwt.AccessClaims, error) {
	claims, err := c.au.VerifyAccess(ctx, token)
	if err != nil {
		return claims, ErrUnauthorized
	}

	return claims, nil
}
