package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/govalues/decimal"
	"github.com/rescuebite/rescuebite/internal/core/domain"
	"go.uber.org/zap"
)

// moneyScale is the scale commission amounts are rounded to.
const moneyScale = 2

// computeCommission runs exactly once per paid order. The repository
// applies the result with a set-if-null guard on computed_at, so a
// duplicate trigger surfaces ErrAlreadyComputed and changes nothing.
func (s *Service) computeCommission(ctx context.Context, order *domain.Order) error {
	// The override is read at computation time, never cached earlier.
	restaurant, err := s.repo.GetRestaurant(ctx, order.RestaurantID)
	if err != nil {
		return err
	}

	rate := s.defaultRate
	if restaurant.CommissionRate != nil {
		rate = *restaurant.CommissionRate
	}

	commission, err := SplitTotal(order.Total, rate)
	if err != nil {
		return fmt.Errorf("math error:%w", err)
	}

	scheduledFor := domain.NextSettlementDate(*commission.ComputedAt, s.settlementDay)

	_, err = s.repo.ComputeOrderCommission(ctx, order.ID, commission, scheduledFor)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyComputed) {
			s.logger.Debug("commission already computed", zap.Uint64("order", order.ID))
			return nil
		}
		return err
	}

	s.logger.Info("commission computed",
		zap.Uint64("order", order.ID),
		zap.String("revenue", commission.PlatformRevenue.String()),
		zap.String("payout", commission.RestaurantPayout.String()))

	return nil
}

// SplitTotal divides an order total between the platform and the
// restaurant at the given percentage rate.
func SplitTotal(total, rate decimal.Decimal) (domain.Commission, error) {
	product, err := total.Mul(rate)
	if err != nil {
		return domain.Commission{}, err
	}
	revenue, err := product.Quo(decimal.Hundred)
	if err != nil {
		return domain.Commission{}, err
	}
	revenue = revenue.Round(moneyScale)

	payout, err := total.Sub(revenue)
	if err != nil {
		return domain.Commission{}, err
	}

	now := time.Now()
	return domain.Commission{
		Rate:             rate,
		PlatformRevenue:  revenue,
		RestaurantPayout: payout,
		ComputedAt:       &now,
	}, nil
}
