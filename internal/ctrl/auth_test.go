package ctrl

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/JMURv/hr-auth/internal/auth/jwt"
	"github.com/JMURv/hr-auth/internal/config"
	"github.com/JMURv/hr-auth/internal/dto"
	md "github.com/JMURv/hr-auth/internal/models"
	"github.com/JMURv/hr-auth/internal/repo"
	"github.com/JMURv/hr-auth/tests/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time { return f.t }

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		AccessTTL:        15 * time.Minute,
		RefreshTTL:       30 * 24 * time.Hour,
		AbsoluteTTL:      90 * 24 * time.Hour,
		IdleTimeout:      7 * 24 * time.Hour,
		MaxDevices:       5,
		AnomalyThreshold: 3,
		AnomalyWindow:    5,
		SweepInterval:    time.Hour,
		SweepGrace:       30 * 24 * time.Hour,
		StoreTimeout:     5 * time.Second,
	}
}

func TestController_Login(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	now := time.Now()
	conf := testAuthConfig()
	c := New(mockAuth, mockRepo, mockCache, conf).WithClock(&fakeClock{t: now})

	uid := uuid.New()
	device := &dto.DeviceRequest{IP: "192.168.1.1", UA: "test-user-agent"}
	proj := &md.UserProjection{ID: uid, Role: "recruiter", IsActive: true, TokenVersion: 2}

	tests := []struct {
		name     string
		setup    func()
		expected *dto.TokenPair
		err      error
	}{
		{
			name: "Success",
			setup: func() {
				mockRepo.EXPECT().
					GetUserProjection(gomock.Any(), uid).
					Return(proj, nil)
				mockAuth.EXPECT().
					IssueAccess(gomock.Any(), uid, "recruiter").
					Return("access-token", nil)
				mockAuth.EXPECT().
					IssueRefresh(gomock.Any(), uid, int64(2), gomock.Any(), gomock.Any()).
					Return("refresh-token", nil)
				mockRepo.EXPECT().
					CreateSession(gomock.Any(), gomock.Any()).
					DoAndReturn(
						func(_ context.Context, s *md.Session) (*md.Session, error) {
							assert.Equal(t, uid, s.UserID)
							assert.Equal(t, jwt.HashToken("refresh-token"), s.TokenHash)
							assert.Equal(t, int64(2), s.IssuedVersion)
							assert.True(t, s.ExpiresAt.Equal(now.Add(conf.RefreshTTL)))
							assert.True(t, s.AbsoluteExpiresAt.Equal(now.Add(conf.AbsoluteTTL)))
							return s, nil
						},
					)
				mockRepo.EXPECT().
					ListActiveForUser(gomock.Any(), uid, now, nil).
					Return([]*md.Session{{SessionID: uuid.New()}}, nil)
				mockCache.EXPECT().
					InvalidateKeysByPattern(gomock.Any(), fmt.Sprintf("sessions:%v*", uid))
			},
			expected: &dto.TokenPair{Access: "access-token", Refresh: "refresh-token"},
		},
		{
			name: "UserNotFound",
			setup: func() {
				mockRepo.EXPECT().
					GetUserProjection(gomock.Any(), uid).
					Return(nil, repo.ErrNotFound)
			},
			err: ErrUnauthorized,
		},
		{
			name: "InactiveUser",
			setup: func() {
				mockRepo.EXPECT().
					GetUserProjection(gomock.Any(), uid).
					Return(&md.UserProjection{ID: uid, IsActive: false}, nil)
			},
			err: ErrUnauthorized,
		},
		{
			name: "StoreUnavailable",
			setup: func() {
				mockRepo.EXPECT().
					GetUserProjection(gomock.Any(), uid).
					Return(nil, errors.New("connection refused"))
			},
			err: ErrServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			res, err := c.Login(ctx, &dto.LoginRequest{UserID: uid}, device)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, res)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, res)
			}
		})
	}
}

func TestController_Refresh_Success(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	now := time.Now()
	conf := testAuthConfig()
	c := New(mockAuth, mockRepo, mockCache, conf).WithClock(&fakeClock{t: now})

	uid := uuid.New()
	sid := uuid.New()
	absExp := now.Add(60 * 24 * time.Hour)
	device := &dto.DeviceRequest{IP: "192.168.1.1", UA: "test-user-agent"}
	oldHash := jwt.HashToken("old-refresh")

	claims := jwt.RefreshClaims{UID: uid, Version: 2, SessionID: sid, AbsExp: absExp.Unix()}
	sess := &md.Session{
		UserID:            uid,
		SessionID:         sid,
		TokenHash:         oldHash,
		IssuedVersion:     2,
		IP:                device.IP,
		UserAgent:         device.UA,
		DeviceLabel:       "work laptop",
		ExpiresAt:         now.Add(10 * 24 * time.Hour),
		AbsoluteExpiresAt: absExp,
	}

	mockAuth.EXPECT().DecodeRefresh(gomock.Any(), "old-refresh").Return(claims, nil)
	mockRepo.EXPECT().
		GetUserProjection(gomock.Any(), uid).
		Return(&md.UserProjection{ID: uid, Role: "recruiter", IsActive: true, TokenVersion: 2}, nil)
	mockRepo.EXPECT().
		FindActiveByHash(gomock.Any(), oldHash, uid, now, conf.IdleTimeout).
		Return(sess, nil)
	mockRepo.EXPECT().
		ListActiveForUser(gomock.Any(), uid, now, map[string]any{"limit": 5}).
		Return([]*md.Session{sess}, nil)
	mockAuth.EXPECT().IssueAccess(gomock.Any(), uid, "recruiter").Return("new-access", nil)
	mockAuth.EXPECT().
		IssueRefresh(gomock.Any(), uid, int64(2), sid, absExp).
		Return("new-refresh", nil)
	mockRepo.EXPECT().
		RotateSession(gomock.Any(), oldHash, gomock.Any()).
		DoAndReturn(
			func(_ context.Context, _ string, next *md.Session) (*md.Session, error) {
				assert.Equal(t, sid, next.SessionID)
				assert.Equal(t, jwt.HashToken("new-refresh"), next.TokenHash)
				assert.True(t, next.ExpiresAt.Equal(now.Add(conf.RefreshTTL)))
				assert.True(t, next.AbsoluteExpiresAt.Equal(absExp))
				assert.Equal(t, "work laptop", next.DeviceLabel)
				return next, nil
			},
		)
	mockRepo.EXPECT().
		ListActiveForUser(gomock.Any(), uid, now, nil).
		Return([]*md.Session{sess}, nil)
	mockCache.EXPECT().
		InvalidateKeysByPattern(gomock.Any(), fmt.Sprintf("sessions:%v*", uid))

	res, err := c.Refresh(ctx, "old-refresh", device)
	assert.NoError(t, err)
	assert.Equal(t, &dto.TokenPair{Access: "new-access", Refresh: "new-refresh"}, res)
}

func TestController_Refresh_Failures(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	now := time.Now()
	conf := testAuthConfig()
	c := New(mockAuth, mockRepo, mockCache, conf).WithClock(&fakeClock{t: now})

	uid := uuid.New()
	sid := uuid.New()
	absExp := now.Add(60 * 24 * time.Hour)
	device := &dto.DeviceRequest{IP: "192.168.1.1", UA: "test-user-agent"}
	oldHash := jwt.HashToken("old-refresh")
	claims := jwt.RefreshClaims{UID: uid, Version: 2, SessionID: sid, AbsExp: absExp.Unix()}
	activeProj := &md.UserProjection{ID: uid, Role: "recruiter", IsActive: true, TokenVersion: 2}

	tests := []struct {
		name  string
		setup func()
		err   error
	}{
		{
			name: "MalformedToken",
			setup: func() {
				mockAuth.EXPECT().
					DecodeRefresh(gomock.Any(), "old-refresh").
					Return(jwt.RefreshClaims{}, jwt.ErrInvalidToken)
			},
			err: ErrUnauthorized,
		},
		{
			name: "PastAbsoluteCeiling",
			setup: func() {
				expired := claims
				expired.AbsExp = now.Add(-time.Minute).Unix()
				mockAuth.EXPECT().
					DecodeRefresh(gomock.Any(), "old-refresh").
					Return(expired, nil)
				mockRepo.EXPECT().RevokeBySessionID(gomock.Any(), sid).Return(nil)
				mockCache.EXPECT().
					InvalidateKeysByPattern(gomock.Any(), fmt.Sprintf("sessions:%v*", uid))
			},
			err: ErrSessionExpired,
		},
		{
			name: "VersionBumped",
			setup: func() {
				mockAuth.EXPECT().
					DecodeRefresh(gomock.Any(), "old-refresh").
					Return(claims, nil)
				mockRepo.EXPECT().
					GetUserProjection(gomock.Any(), uid).
					Return(&md.UserProjection{ID: uid, Role: "recruiter", IsActive: true, TokenVersion: 3}, nil)
				mockRepo.EXPECT().RevokeBySessionID(gomock.Any(), sid).Return(nil)
				mockCache.EXPECT().
					InvalidateKeysByPattern(gomock.Any(), fmt.Sprintf("sessions:%v*", uid))
			},
			err: ErrUnauthorized,
		},
		{
			name: "InactiveUser",
			setup: func() {
				mockAuth.EXPECT().
					DecodeRefresh(gomock.Any(), "old-refresh").
					Return(claims, nil)
				mockRepo.EXPECT().
					GetUserProjection(gomock.Any(), uid).
					Return(&md.UserProjection{ID: uid, IsActive: false, TokenVersion: 2}, nil)
			},
			err: ErrUnauthorized,
		},
		{
			name: "AlreadyRotatedAway",
			setup: func() {
				mockAuth.EXPECT().
					DecodeRefresh(gomock.Any(), "old-refresh").
					Return(claims, nil)
				mockRepo.EXPECT().GetUserProjection(gomock.Any(), uid).Return(activeProj, nil)
				mockRepo.EXPECT().
					FindActiveByHash(gomock.Any(), oldHash, uid, now, conf.IdleTimeout).
					Return(nil, repo.ErrRevoked)
			},
			err: ErrUnauthorized,
		},
		{
			name: "IdleTimedOut",
			setup: func() {
				mockAuth.EXPECT().
					DecodeRefresh(gomock.Any(), "old-refresh").
					Return(claims, nil)
				mockRepo.EXPECT().GetUserProjection(gomock.Any(), uid).Return(activeProj, nil)
				mockRepo.EXPECT().
					FindActiveByHash(gomock.Any(), oldHash, uid, now, conf.IdleTimeout).
					Return(nil, repo.ErrIdleExpired)
			},
			err: ErrSessionExpired,
		},
		{
			name: "StoreUnavailable",
			setup: func() {
				mockAuth.EXPECT().
					DecodeRefresh(gomock.Any(), "old-refresh").
					Return(claims, nil)
				mockRepo.EXPECT().GetUserProjection(gomock.Any(), uid).Return(activeProj, nil)
				mockRepo.EXPECT().
					FindActiveByHash(gomock.Any(), oldHash, uid, now, conf.IdleTimeout).
					Return(nil, errors.New("connection refused"))
			},
			err: ErrServiceUnavailable,
		},
		{
			name: "LostRotationRace",
			setup: func() {
				sess := &md.Session{
					UserID:            uid,
					SessionID:         sid,
					TokenHash:         oldHash,
					IP:                device.IP,
					UserAgent:         device.UA,
					AbsoluteExpiresAt: absExp,
				}

				mockAuth.EXPECT().
					DecodeRefresh(gomock.Any(), "old-refresh").
					Return(claims, nil)
				mockRepo.EXPECT().GetUserProjection(gomock.Any(), uid).Return(activeProj, nil)
				mockRepo.EXPECT().
					FindActiveByHash(gomock.Any(), oldHash, uid, now, conf.IdleTimeout).
					Return(sess, nil)
				mockRepo.EXPECT().
					ListActiveForUser(gomock.Any(), uid, now, map[string]any{"limit": 5}).
					Return([]*md.Session{sess}, nil)
				mockAuth.EXPECT().IssueAccess(gomock.Any(), uid, "recruiter").Return("new-access", nil)
				mockAuth.EXPECT().
					IssueRefresh(gomock.Any(), uid, int64(2), sid, absExp).
					Return("new-refresh", nil)
				mockRepo.EXPECT().
					RotateSession(gomock.Any(), oldHash, gomock.Any()).
					Return(nil, repo.ErrAlreadyExists)
			},
			err: ErrUnauthorized,
		},
		{
			name: "AnomalyTripsFullRevoke",
			setup: func() {
				sess := &md.Session{
					UserID:            uid,
					SessionID:         sid,
					TokenHash:         oldHash,
					IP:                "10.0.0.1",
					UserAgent:         "agent-a",
					AbsoluteExpiresAt: absExp,
				}
				other := &md.Session{
					UserID:    uid,
					SessionID: uuid.New(),
					IP:        "10.0.0.2",
					UserAgent: "agent-b",
				}

				mockAuth.EXPECT().
					DecodeRefresh(gomock.Any(), "old-refresh").
					Return(claims, nil)
				mockRepo.EXPECT().GetUserProjection(gomock.Any(), uid).Return(activeProj, nil)
				mockRepo.EXPECT().
					FindActiveByHash(gomock.Any(), oldHash, uid, now, conf.IdleTimeout).
					Return(sess, nil)
				mockRepo.EXPECT().
					ListActiveForUser(gomock.Any(), uid, now, map[string]any{"limit": 5}).
					Return([]*md.Session{sess, other}, nil)
				mockRepo.EXPECT().RevokeAllForUser(gomock.Any(), uid).Return(nil)
				mockCache.EXPECT().
					InvalidateKeysByPattern(gomock.Any(), fmt.Sprintf("sessions:%v*", uid))
			},
			err: ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			res, err := c.Refresh(ctx, "old-refresh", device)
			assert.ErrorIs(t, err, tt.err)
			assert.Nil(t, res)
		})
	}
}

func TestController_Logout_Idempotent(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	c := New(mockAuth, mockRepo, mockCache, testAuthConfig())

	// A malformed token still revokes by hash and never errors, and a
	// second logout of the same token is a no-op success.
	mockRepo.EXPECT().
		RevokeByHash(gomock.Any(), jwt.HashToken("garbage")).
		Return(nil).
		Times(2)
	mockAuth.EXPECT().
		DecodeRefresh(gomock.Any(), "garbage").
		Return(jwt.RefreshClaims{}, jwt.ErrInvalidToken).
		Times(2)

	c.Logout(ctx, "garbage")
	c.Logout(ctx, "garbage")
}

func TestController_ListActiveSessions(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	now := time.Now()
	c := New(mockAuth, mockRepo, mockCache, testAuthConfig()).WithClock(&fakeClock{t: now})

	uid := uuid.New()
	sessions := []*md.Session{{UserID: uid, SessionID: uuid.New()}}
	cacheKey := fmt.Sprintf("sessions:%v", uid)

	// Cache miss falls through to the store and repopulates.
	mockCache.EXPECT().
		GetToStruct(gomock.Any(), cacheKey, gomock.Any()).
		Return(errors.New("not found in cache"))
	mockRepo.EXPECT().
		ListActiveForUser(gomock.Any(), uid, now, map[string]any{}).
		Return(sessions, nil)
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), cacheKey, sessions)

	res, err := c.ListActiveSessions(ctx, uid, map[string]any{})
	assert.NoError(t, err)
	assert.Equal(t, sessions, res)

	// Filtered reads bypass the cache entirely.
	mockRepo.EXPECT().
		ListActiveForUser(gomock.Any(), uid, now, map[string]any{"device_label": "work laptop"}).
		Return(sessions, nil)

	res, err = c.ListActiveSessions(ctx, uid, map[string]any{"device_label": "work laptop"})
	assert.NoError(t, err)
	assert.Equal(t, sessions, res)
}

func TestController_RevokeAllSessions(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	c := New(mockAuth, mockRepo, mockCache, testAuthConfig())
	uid := uuid.New()

	mockRepo.EXPECT().RevokeAllForUser(gomock.Any(), uid).Return(nil)
	mockCache.EXPECT().
		InvalidateKeysByPattern(gomock.Any(), fmt.Sprintf("sessions:%v*", uid))

	assert.NoError(t, c.RevokeAllSessions(ctx, uid))

	mockRepo.EXPECT().RevokeAllForUser(gomock.Any(), uid).Return(errors.New("connection refused"))
	assert.ErrorIs(t, c.RevokeAllSessions(ctx, uid), ErrServiceUnavailable)
}
