package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/govalues/decimal"
	"github.com/rescuebite/rescuebite/internal/core/domain"
	"github.com/rescuebite/rescuebite/internal/core/port"
	"go.uber.org/zap"
)

type Service struct {
	repo          port.Repository
	logger        *zap.Logger
	settlementDay time.Weekday
	defaultRate   decimal.Decimal
}

func NewService(repo port.Repository, settlementDay time.Weekday,
	defaultRate decimal.Decimal, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:          repo,
		logger:        logger,
		settlementDay: settlementDay,
		defaultRate:   defaultRate,
	}, nil
}

func (s *Service) CreateOrder(ctx context.Context, customerID, restaurantID uint64,
	items []port.NewOrderItem, method domain.PaymentMethod,
	fulfillment domain.FulfillmentType) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	restaurant, err := s.repo.GetRestaurant(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrRestaurantUnavailable
		}
		return nil, err
	}
	if restaurant.Status != domain.RestaurantStatusActive {
		return nil, domain.ErrRestaurantUnavailable
	}

	// All-or-nothing: every hold already taken is released when any
	// later item fails.
	reservations := make([]*domain.Reservation, 0, len(items))
	rollback := func() {
		for _, r := range reservations {
			if err := s.repo.ReleaseReservation(ctx, r.ID); err != nil {
				s.logger.Error("release reservation",
					zap.String("reservation", r.ID.String()), zap.Error(err))
			}
		}
	}

	lines := make([]domain.OrderItem, 0, len(items))
	total := decimal.Zero
	for _, item := range items {
		pkg, err := s.repo.GetPackage(ctx, item.PackageID)
		if err != nil {
			rollback()
			return nil, err
		}
		if pkg.RestaurantID != restaurantID {
			rollback()
			return nil, domain.ErrBadRequest
		}
		if pkg.Status != domain.PackageStatusActive {
			rollback()
			return nil, domain.ErrPackageInactive
		}

		reservation, err := s.repo.ReserveStock(ctx, item.PackageID, item.Quantity)
		if err != nil {
			rollback()
			return nil, err
		}
		reservations = append(reservations, reservation)

		lines = append(lines, domain.OrderItem{
			PackageID: pkg.ID,
			Name:      pkg.Name,
			UnitPrice: pkg.DiscountedPrice,
			Quantity:  item.Quantity,
		})

		total, err = addLine(total, pkg.DiscountedPrice, item.Quantity)
		if err != nil {
			rollback()
			return nil, fmt.Errorf("math error:%w", err)
		}
	}

	order := &domain.Order{
		CustomerID:    customerID,
		RestaurantID:  restaurantID,
		Items:         lines,
		Total:         total,
		PaymentMethod: method,
		PaymentStatus: domain.PaymentStatusPending,
		Fulfillment:   fulfillment,
		Status:        domain.OrderStatusPending,
		Settlement:    domain.Settlement{Status: domain.SettlementStatusPending},
		CreatedAt:     time.Now(),
	}

	newOrder, err := s.repo.CreateOrder(ctx, order, reservations)
	if err != nil {
		rollback()
		s.logger.Error("create order", zap.Error(err))
		return nil, err
	}

	// Cash settles at pickup, so the order is confirmed right away.
	if method == domain.PaymentMethodCash {
		confirmed, err := s.ConfirmPayment(ctx, newOrder.ID, "")
		if err != nil {
			s.logger.Error("confirm cash order", zap.Uint64("order", newOrder.ID), zap.Error(err))
			return newOrder, nil
		}
		return confirmed, nil
	}

	return newOrder, nil
}

func addLine(total, price decimal.Decimal, quantity int) (decimal.Decimal, error) {
	qty, err := decimal.New(int64(quantity), 0)
	if err != nil {
		return decimal.Decimal{}, err
	}
	line, err := price.Mul(qty)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return total.Add(line)
}

// ConfirmPayment applies the payment-authorized signal. Delivery is
// at-least-once, so a repeated signal surfaces ErrAlreadyConfirmed,
// which callers treat as success.
func (s *Service) ConfirmPayment(ctx context.Context, orderID uint64, transactionRef string) (*domain.Order, error) {
	order, err := s.repo.ConfirmOrderPayment(ctx, orderID, transactionRef)
	if err != nil {
		return nil, err
	}

	if err := s.computeCommission(ctx, order); err != nil {
		// The order stays paid; the missing commission is picked up
		// by manual reconciliation.
		s.logger.Error("commission computation failed, left for reconciliation",
			zap.Uint64("order", order.ID), zap.Error(err))
	}

	return s.repo.GetOrder(ctx, orderID)
}

// FailPayment applies a failed gateway signal: the order is
// cancelled and every held reservation released.
func (s *Service) FailPayment(ctx context.Context, orderID uint64, reason string) (*domain.Order, error) {
	order, err := s.repo.FailOrderPayment(ctx, orderID, reason)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *Service) Transition(ctx context.Context, orderID uint64, to domain.OrderStatus, note string) (*domain.Order, error) {
	switch to {
	case domain.OrderStatusCancelled:
		return s.CancelOrder(ctx, orderID, note)
	case domain.OrderStatusConfirmed:
		// Reaching confirmed is the payment signal's job. A bare
		// status write would skip the reservation commit and the
		// commission computation and leave the order unpayable.
		return nil, domain.ErrInvalidTransition
	}

	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.CanTransition(to) {
		return nil, domain.ErrInvalidTransition
	}

	updated, err := s.repo.UpdateOrderStatus(ctx, orderID, order.Status, to, note)
	if err != nil {
		if errors.Is(err, domain.ErrNoUpdatedData) {
			// Lost a race with a concurrent transition.
			return nil, domain.ErrInvalidTransition
		}
		return nil, err
	}
	return updated, nil
}

// CancelOrder rejects terminal orders instead of silently ignoring
// them. Held stock is released, committed stock restored with a
// compensating increment, both inside the repository transaction.
func (s *Service) CancelOrder(ctx context.Context, orderID uint64, reason string) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status.Terminal() {
		return nil, domain.ErrInvalidTransition
	}

	cancelled, err := s.repo.CancelOrder(ctx, orderID, reason)
	if err != nil {
		if errors.Is(err, domain.ErrNoUpdatedData) {
			return nil, domain.ErrInvalidTransition
		}
		return nil, err
	}
	return cancelled, nil
}

// AcknowledgeOrder flags that the restaurant operator has seen the
// order. The flag is orthogonal to the state machine but meaningless
// on terminal orders.
func (s *Service) AcknowledgeOrder(ctx context.Context, orderID uint64) error {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if order.Status.Terminal() {
		return domain.ErrInvalidTransition
	}
	return s.repo.AcknowledgeOrder(ctx, orderID)
}

func (s *Service) GetOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	return s.repo.GetOrder(ctx, orderID)
}

func (s *Service) ListOrdersByCustomer(ctx context.Context, customerID uint64) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByCustomer(ctx, customerID)
	if err != nil {
		s.logger.Error("list orders for customer", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *Service) ListOrdersByRestaurant(ctx context.Context, restaurantID uint64) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByRestaurant(ctx, restaurantID)
	if err != nil {
		s.logger.Error("list orders for restaurant", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *Service) GetRestaurantBalance(ctx context.Context, restaurantID uint64) (*domain.Restaurant, error) {
	restaurant, err := s.repo.GetRestaurant(ctx, restaurantID)
	if err != nil {
		s.logger.Error("get restaurant balance", zap.Error(err))
		return nil, err
	}
	return restaurant, nil
}
