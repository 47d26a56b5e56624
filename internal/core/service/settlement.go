package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/rescuebite/rescuebite/internal/core/domain"
	"go.uber.org/zap"
)

// RunSettlementLoop drives the weekly payouts without operator
// involvement: every tick it finds restaurants with due orders and
// runs their batches. The operator endpoint stays available for
// off-schedule runs; both paths end in the same idempotent batch.
func (s *Service) RunSettlementLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			due, err := s.repo.ListSettlementDueRestaurants(ctx, now)
			if err != nil {
				s.logger.Error("list restaurants due for settlement", zap.Error(err))
				continue
			}
			for _, restaurantID := range due {
				if _, err := s.RunSettlementBatch(ctx, restaurantID, now); err != nil {
					s.logger.Error("scheduled settlement batch",
						zap.Uint64("restaurant", restaurantID), zap.Error(err))
				}
			}
		case <-ctx.Done():
			return
		}
	}
}

// RunSettlementBatch completes one restaurant-scoped payout batch:
// every order whose settlement is still pending and scheduled on or
// before asOf gets the shared reference, and the restaurant balance
// moves pending to paid by the exact sum of those orders. The whole
// batch is one repository transaction; re-running it is a no-op.
func (s *Service) RunSettlementBatch(ctx context.Context, restaurantID uint64, asOf time.Time) (*domain.SettlementReceipt, error) {
	due, err := s.repo.ListSettlementDue(ctx, restaurantID, asOf)
	if err != nil {
		s.logger.Error("list due settlements", zap.Uint64("restaurant", restaurantID), zap.Error(err))
		return nil, err
	}
	if len(due) == 0 {
		return &domain.SettlementReceipt{
			RestaurantID: restaurantID,
			Total:        decimal.Zero,
			CompletedAt:  time.Now(),
		}, nil
	}

	reference := uuid.NewString()

	receipt, err := s.repo.CompleteSettlementBatch(ctx, restaurantID, due, reference)
	if err != nil {
		s.logger.Error("settlement batch aborted",
			zap.Uint64("restaurant", restaurantID),
			zap.String("reference", reference),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("settlement batch completed",
		zap.Uint64("restaurant", restaurantID),
		zap.String("reference", receipt.Reference),
		zap.Int("orders", len(receipt.OrderIDs)),
		zap.String("total", receipt.Total.String()))

	return receipt, nil
}
