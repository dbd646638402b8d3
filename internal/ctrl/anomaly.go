package ctrl

import (
	"context"
	"time"

	"github.com/JMURv/hr-auth/internal/dto"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

// isSuspicious counts distinct (ip, user agent) pairs across the most
// recently used active sessions plus the incoming request. Reaching
// the threshold within the inspection window flags the refresh. This
// is a heuristic, not a security boundary: a false positive costs one
// forced re-login.
func (c *Controller) isSuspicious(
	ctx context.Context,
	uid uuid.UUID,
	now time.Time,
	d *dto.DeviceRequest,
) (bool, error) {
	const op = "auth.isSuspicious.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if c.conf.AnomalyThreshold <= 0 {
		return false, nil
	}

	recent, err := c.repo.ListActiveForUser(
		ctx, uid, now, map[string]any{"limit": c.conf.AnomalyWindow},
	)
	if err != nil {
		return false, err
	}

	type pair struct{ ip, ua string }

	distinct := map[pair]struct{}{
		{ip: d.IP, ua: d.UA}: {},
	}
	for _, s := range recent {
		distinct[pair{ip: s.IP, ua: s.UserAgent}] = struct{}{}
	}

	return len(distinct) >= c.conf.AnomalyThreshold, nil
}
