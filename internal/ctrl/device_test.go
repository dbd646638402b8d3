package ctrl

import (
	"context"
	"errors"
	"testing"
	"time"

	md "github.com/JMURv/hr-auth/internal/models"
	"github.com/JMURv/hr-auth/tests/mocks"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func TestController_EnforceDeviceLimit(t *testing.T) {
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

	// Seven active sessions ordered most-recently-active first, as the
	// store returns them. Only the two at the tail may be evicted.
	sessions := make([]*md.Session, 0, 7)
	for i := 0; i < 7; i++ {
		sessions = append(
			sessions, &md.Session{
				UserID:         uid,
				SessionID:      uuid.New(),
				LastActivityAt: now.Add(-time.Duration(i) * time.Hour),
			},
		)
	}

	t.Run("EvictsLeastRecentlyActive", func(t *testing.T) {
		mockRepo.EXPECT().
			ListActiveForUser(gomock.Any(), uid, now, nil).
			Return(sessions, nil)
		mockRepo.EXPECT().RevokeBySessionID(gomock.Any(), sessions[5].SessionID).Return(nil)
		mockRepo.EXPECT().RevokeBySessionID(gomock.Any(), sessions[6].SessionID).Return(nil)

		c.enforceDeviceLimit(ctx, uid)
	})

	t.Run("UnderTheCapIsUntouched", func(t *testing.T) {
		mockRepo.EXPECT().
			ListActiveForUser(gomock.Any(), uid, now, nil).
			Return(sessions[:5], nil)

		c.enforceDeviceLimit(ctx, uid)
	})

	t.Run("KeepsEvictingPastOneFailure", func(t *testing.T) {
		mockRepo.EXPECT().
			ListActiveForUser(gomock.Any(), uid, now, nil).
			Return(sessions, nil)
		mockRepo.EXPECT().
			RevokeBySessionID(gomock.Any(), sessions[5].SessionID).
			Return(errors.New("connection refused"))
		mockRepo.EXPECT().RevokeBySessionID(gomock.Any(), sessions[6].SessionID).Return(nil)

		c.enforceDeviceLimit(ctx, uid)
	})

	t.Run("DisabledWhenCapIsZero", func(t *testing.T) {
		disabled := testAuthConfig()
		disabled.MaxDevices = 0

		New(mockAuth, mockRepo, mockCache, disabled).
			WithClock(&fakeClock{t: now}).
			enforceDeviceLimit(ctx, uid)
	})
}
