package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/rescuebite/rescuebite/internal/core/domain"
	"github.com/rescuebite/rescuebite/internal/core/port/mock"
	"go.uber.org/zap"
)

func TestDispatcher_Dispatch(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	event := &domain.Event{
		ID:        uuid.New(),
		Name:      domain.EventOrderConfirmed,
		Payload:   []byte(`{"order_id":1}`),
		CreatedAt: time.Now(),
	}

	t.Run("published event is marked sent", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		publisher := mock.NewMockNotificationPublisher(mockCtrl)

		publisher.EXPECT().Publish(gomock.Any(), event).Return(nil)
		repo.EXPECT().MarkEventSent(gomock.Any(), event.ID).Return(nil)

		d := NewDispatcher(repo, publisher, zap.NewNop())
		d.dispatch(context.Background(), event)
	})

	t.Run("publish failure is recorded for retry", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		publisher := mock.NewMockNotificationPublisher(mockCtrl)

		publisher.EXPECT().Publish(gomock.Any(), event).Return(errors.New("broker down"))
		repo.EXPECT().MarkEventFailed(gomock.Any(), event.ID).Return(nil)

		d := NewDispatcher(repo, publisher, zap.NewNop())
		d.dispatch(context.Background(), event)
	})

	t.Run("losing the sent race only logs", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		publisher := mock.NewMockNotificationPublisher(mockCtrl)

		publisher.EXPECT().Publish(gomock.Any(), event).Return(nil)
		repo.EXPECT().MarkEventSent(gomock.Any(), event.ID).Return(domain.ErrNoUpdatedData)

		d := NewDispatcher(repo, publisher, zap.NewNop())
		d.dispatch(context.Background(), event)
	})
}
