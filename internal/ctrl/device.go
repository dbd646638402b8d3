package ctrl

import (
	"context"

	metrics "github.com/JMURv/hr-auth/internal/observability/metrics/prometheus"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// enforceDeviceLimit trims a user's sessions down to the configured
// device cap. The store orders by last_activity_at descending with
// created_at descending as the tie-break, so among equally active
// sessions the oldest login is evicted first. Best effort: a failure
// here never fails the login or refresh that triggered it.
func (c *Controller) enforceDeviceLimit(ctx context.Context, uid uuid.UUID) {
	const op = "auth.enforceDeviceLimit.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if c.conf.MaxDevices <= 0 {
		return
	}

	sessions, err := c.repo.ListActiveForUser(ctx, uid, c.clock.Now(), nil)
	if err != nil {
		zap.L().Warn("failed to list sessions for device limit", zap.String("op", op), zap.Error(err))
		return
	}

	if len(sessions) <= c.conf.MaxDevices {
		return
	}

	for _, s := range sessions[c.conf.MaxDevices:] {
		if err = c.repo.RevokeBySessionID(ctx, s.SessionID); err != nil {
			zap.L().Warn(
				"failed to evict session over device limit",
				zap.String("op", op),
				zap.String("sid", s.SessionID.String()),
				zap.Error(err),
			)

			continue
		}

		metrics.IncRevocation("device_limit")
	}

	zap.L().Info(
		"evicted sessions over device limit",
		zap.String("op", op),
		zap.String("uid", uid.String()),
		zap.Int("evicted", len(sessions)-c.conf.MaxDevices),
	)
}
