package port

import (
	"context"

	"github.com/rescuebite/rescuebite/internal/core/domain"
)

//go:generate mockgen -source=notifier.go -destination=mock/notifier.go -package=mock
type NotificationPublisher interface {
	Publish(ctx context.Context, event *domain.Event) error
}
