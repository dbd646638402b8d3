package db

import (
	"context"
	"time"

	md "github.com/JMURv/hr-auth/internal/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func buildSessionListQuery(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
	filters map[string]any,
) (string, []any, error) {
	const op = "sessions.buildSessionListQuery.repo"

	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	query := sq.Select(
		"s.id",
		"s.user_id",
		"s.session_id",
		"s.token_hash",
		"s.issued_version",
		"s.ip",
		"s.user_agent",
		"s.device_fingerprint",
		"s.device_label",
		"s.is_revoked",
		"s.created_at",
		"s.last_used_at",
		"s.last_activity_at",
		"s.expires_at",
		"s.absolute_expires_at",
	).
		From("sessions s").
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"s.user_id": userID}).
		Where(sq.Eq{"s.is_revoked": false}).
		Where(sq.Gt{"s.expires_at": now}).
		Where(sq.Gt{"s.absolute_expires_at": now}).
		OrderBy("s.last_activity_at DESC", "s.created_at DESC")

	if label, ok := filters["device_label"].(string); ok {
		query = query.Where(sq.Eq{"s.device_label": label})
	}

	if limit, ok := filters["limit"].(int); ok {
		query = query.Limit(uint64(limit))
	}

	dataSql, dataArgs, err := query.ToSql()
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to build session list query", zap.String("op", op), zap.Error(err))
		return "", nil, err
	}

	return dataSql, dataArgs, nil
}

// ListActiveForUser returns the user's live sessions ordered most
// recently active first, ties broken so the most recently created row
// sorts first. The device limiter and the anomaly detector both key
// off this ordering.
func (r *Repository) ListActiveForUser(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
	filters map[string]any,
) ([]*md.Session, error) {
	const op = "sessions.ListActiveForUser.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	dataSql, dataArgs, err := buildSessionListQuery(ctx, userID, now, filters)
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryxContext(ctx, dataSql, dataArgs...)
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to list sessions", zap.String("op", op), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	res := make([]*md.Session, 0, 8)
	for rows.Next() {
		s := &md.Session{}
		if err = rows.StructScan(s); err != nil {
			span.SetTag("error", true)
			zap.L().Error("failed to scan session", zap.String("op", op), zap.Error(err))
			return nil, err
		}

		res = append(res, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return res, nil
}
