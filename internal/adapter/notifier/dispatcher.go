package notifier

import (
	"context"
	"time"

	"github.com/rescuebite/rescuebite/internal/core/domain"
	"github.com/rescuebite/rescuebite/internal/core/port"
	"go.uber.org/zap"
)

const (
	pollInterval = 2 * time.Second
	batchSize    = 64
)

// Dispatcher drains the transactional outbox independently of the
// order pipeline. Publish failures are logged and retried on a later
// poll; they can never roll back core state. Delivery to the sink is
// at-least-once.
type Dispatcher struct {
	repo      port.Repository
	publisher port.NotificationPublisher
	logger    *zap.Logger
	queue     chan *domain.Event
}

func NewDispatcher(repo port.Repository, publisher port.NotificationPublisher,
	logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		queue:     make(chan *domain.Event, batchSize),
	}
}

func (d *Dispatcher) Run(ctx context.Context, workers int) {
	for i := 0; i < workers; i++ {
		go d.worker(ctx)
	}
	go d.poll(ctx)
}

func (d *Dispatcher) poll(ctx context.Context) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			events, err := d.repo.PendingEvents(ctx, batchSize)
			if err != nil {
				d.logger.Error("fetch pending events", zap.Error(err))
				continue
			}
			for _, event := range events {
				select {
				case d.queue <- event:
				case <-ctx.Done():
					return
				}
			}
		case <-ctx.Done():
			return
		}
	}
}

func (d *Dispatcher) worker(ctx context.Context) {
	for {
		select {
		case event := <-d.queue:
			d.dispatch(ctx, event)
		case <-ctx.Done():
			d.logger.Debug("finished worker")
			return
		}
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, event *domain.Event) {
	if err := d.publisher.Publish(ctx, event); err != nil {
		d.logger.Error("publish notification",
			zap.String("event", event.ID.String()),
			zap.String("name", event.Name),
			zap.Int("attempts", event.Attempts),
			zap.Error(err))
		if err := d.repo.MarkEventFailed(ctx, event.ID); err != nil {
			d.logger.Error("mark event failed", zap.String("event", event.ID.String()), zap.Error(err))
		}
		return
	}

	if err := d.repo.MarkEventSent(ctx, event.ID); err != nil {
		// The poller may hand the same event to two workers; losing
		// the race here just means a duplicate notification.
		d.logger.Debug("mark event sent",
			zap.String("event", event.ID.String()), zap.Error(err))
	}
}
