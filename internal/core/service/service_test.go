package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/rescuebite/rescuebite/internal/core/domain"
	"github.com/rescuebite/rescuebite/internal/core/port"
	"github.com/rescuebite/rescuebite/internal/core/port/mock"
	"github.com/rescuebite/rescuebite/internal/core/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type prepareMocks func(repo *mock.MockRepository)

func newTestService(t *testing.T, repo *mock.MockRepository) *service.Service {
	t.Helper()

	logger, _ := zap.NewProduction()
	s, err := service.NewService(repo, time.Monday, decimal.MustParse("10"), logger)
	assert.NoError(t, err)
	return s
}

func TestService_CreateOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	type createOrderTest struct {
		name     string
		items    []port.NewOrderItem
		method   domain.PaymentMethod
		mock     prepareMocks
		expError error
	}

	restaurant := domain.Restaurant{ID: 7, Name: "Trattoria", Status: domain.RestaurantStatusActive}
	suspended := domain.Restaurant{ID: 7, Name: "Trattoria", Status: domain.RestaurantStatusSuspended}
	pkg := domain.Package{
		ID:                42,
		RestaurantID:      7,
		Name:              "Surprise bag",
		DiscountedPrice:   decimal.MustParse("5.50"),
		AvailableQuantity: 3,
		Status:            domain.PackageStatusActive,
	}
	inactive := domain.Package{
		ID:           43,
		RestaurantID: 7,
		Name:         "Sold out bag",
		Status:       domain.PackageStatusInactive,
	}
	reservation := domain.Reservation{
		ID:        uuid.New(),
		PackageID: pkg.ID,
		Quantity:  2,
		State:     domain.ReservationHeld,
	}

	tests := []createOrderTest{
		{
			name:   "create good order",
			items:  []port.NewOrderItem{{PackageID: pkg.ID, Quantity: 2}},
			method: domain.PaymentMethodCard,
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetRestaurant(gomock.Any(), restaurant.ID).Return(&restaurant, nil)
				repo.EXPECT().GetPackage(gomock.Any(), pkg.ID).Return(&pkg, nil)
				repo.EXPECT().ReserveStock(gomock.Any(), pkg.ID, 2).Return(&reservation, nil)
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), []*domain.Reservation{&reservation}).
					DoAndReturn(func(_ context.Context, order *domain.Order, _ []*domain.Reservation) (*domain.Order, error) {
						assert.Zero(t, order.Total.Cmp(decimal.MustParse("11.00")))
						assert.Equal(t, domain.OrderStatusPending, order.Status)
						assert.Equal(t, domain.PaymentStatusPending, order.PaymentStatus)
						order.ID = 1
						return order, nil
					})
			},
			expError: nil,
		},
		{
			name:     "empty order",
			items:    nil,
			method:   domain.PaymentMethodCard,
			mock:     func(repo *mock.MockRepository) {},
			expError: domain.ErrEmptyOrder,
		},
		{
			name:   "restaurant suspended",
			items:  []port.NewOrderItem{{PackageID: pkg.ID, Quantity: 1}},
			method: domain.PaymentMethodCard,
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetRestaurant(gomock.Any(), restaurant.ID).Return(&suspended, nil)
			},
			expError: domain.ErrRestaurantUnavailable,
		},
		{
			name:   "package inactive",
			items:  []port.NewOrderItem{{PackageID: inactive.ID, Quantity: 1}},
			method: domain.PaymentMethodCard,
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetRestaurant(gomock.Any(), restaurant.ID).Return(&restaurant, nil)
				repo.EXPECT().GetPackage(gomock.Any(), inactive.ID).Return(&inactive, nil)
			},
			expError: domain.ErrPackageInactive,
		},
		{
			name: "insufficient stock releases earlier holds",
			items: []port.NewOrderItem{
				{PackageID: pkg.ID, Quantity: 2},
				{PackageID: inactive.ID, Quantity: 5},
			},
			method: domain.PaymentMethodCard,
			mock: func(repo *mock.MockRepository) {
				active := inactive
				active.Status = domain.PackageStatusActive
				repo.EXPECT().GetRestaurant(gomock.Any(), restaurant.ID).Return(&restaurant, nil)
				repo.EXPECT().GetPackage(gomock.Any(), pkg.ID).Return(&pkg, nil)
				repo.EXPECT().ReserveStock(gomock.Any(), pkg.ID, 2).Return(&reservation, nil)
				repo.EXPECT().GetPackage(gomock.Any(), active.ID).Return(&active, nil)
				repo.EXPECT().ReserveStock(gomock.Any(), active.ID, 5).
					Return(nil, &domain.InsufficientStockError{PackageID: active.ID, Requested: 5, Available: 1})
				repo.EXPECT().ReleaseReservation(gomock.Any(), reservation.ID).Return(nil)
			},
			expError: domain.ErrInsufficientStock,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			test.mock(repo)
			s := newTestService(t, repo)

			result, err := s.CreateOrder(context.Background(), 100, restaurant.ID,
				test.items, test.method, domain.FulfillmentPickup)

			if test.expError == nil {
				assert.NoError(t, err)
				assert.NotNil(t, result)
			} else {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, result)
			}
		})
	}
}

func TestService_CreateOrder_CashConfirmsImmediately(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	restaurant := domain.Restaurant{ID: 7, Status: domain.RestaurantStatusActive}
	pkg := domain.Package{
		ID:                42,
		RestaurantID:      7,
		Name:              "Surprise bag",
		DiscountedPrice:   decimal.MustParse("5.50"),
		AvailableQuantity: 3,
		Status:            domain.PackageStatusActive,
	}
	reservation := domain.Reservation{ID: uuid.New(), PackageID: pkg.ID, Quantity: 1, State: domain.ReservationHeld}
	confirmed := domain.Order{
		ID:            1,
		RestaurantID:  restaurant.ID,
		Total:         decimal.MustParse("5.50"),
		Status:        domain.OrderStatusConfirmed,
		PaymentStatus: domain.PaymentStatusPaid,
	}

	repo := mock.NewMockRepository(mockCtrl)
	repo.EXPECT().GetRestaurant(gomock.Any(), restaurant.ID).Return(&restaurant, nil)
	repo.EXPECT().GetPackage(gomock.Any(), pkg.ID).Return(&pkg, nil)
	repo.EXPECT().ReserveStock(gomock.Any(), pkg.ID, 1).Return(&reservation, nil)
	repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order *domain.Order, _ []*domain.Reservation) (*domain.Order, error) {
			order.ID = 1
			return order, nil
		})
	repo.EXPECT().ConfirmOrderPayment(gomock.Any(), uint64(1), "").Return(&confirmed, nil)
	repo.EXPECT().GetRestaurant(gomock.Any(), restaurant.ID).Return(&restaurant, nil)
	repo.EXPECT().ComputeOrderCommission(gomock.Any(), uint64(1), gomock.Any(), gomock.Any()).Return(&confirmed, nil)
	repo.EXPECT().GetOrder(gomock.Any(), uint64(1)).Return(&confirmed, nil)

	s := newTestService(t, repo)

	result, err := s.CreateOrder(context.Background(), 100, restaurant.ID,
		[]port.NewOrderItem{{PackageID: pkg.ID, Quantity: 1}},
		domain.PaymentMethodCash, domain.FulfillmentPickup)

	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusConfirmed, result.Status)
	assert.Equal(t, domain.PaymentStatusPaid, result.PaymentStatus)
}

func TestService_Transition(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	type transitionTest struct {
		name     string
		order    domain.Order
		to       domain.OrderStatus
		mock     prepareMocks
		expError error
	}

	pending := domain.Order{ID: 4, Status: domain.OrderStatusPending, PaymentMethod: domain.PaymentMethodCard, Fulfillment: domain.FulfillmentPickup}
	confirmed := domain.Order{ID: 1, Status: domain.OrderStatusConfirmed, Fulfillment: domain.FulfillmentPickup}
	ready := domain.Order{ID: 2, Status: domain.OrderStatusReady, Fulfillment: domain.FulfillmentPickup}
	completed := domain.Order{ID: 3, Status: domain.OrderStatusCompleted, Fulfillment: domain.FulfillmentPickup}

	tests := []transitionTest{
		{
			// Confirming an unpaid order must go through the payment
			// signal, never through a bare status write.
			name:     "pending order cannot be confirmed by status write",
			order:    pending,
			to:       domain.OrderStatusConfirmed,
			mock:     func(repo *mock.MockRepository) {},
			expError: domain.ErrInvalidTransition,
		},
		{
			name:  "confirmed to preparing",
			order: confirmed,
			to:    domain.OrderStatusPreparing,
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetOrder(gomock.Any(), confirmed.ID).Return(&confirmed, nil)
				repo.EXPECT().UpdateOrderStatus(gomock.Any(), confirmed.ID,
					domain.OrderStatusConfirmed, domain.OrderStatusPreparing, "").
					Return(&domain.Order{ID: 1, Status: domain.OrderStatusPreparing}, nil)
			},
			expError: nil,
		},
		{
			name:  "pickup order rejects delivering",
			order: ready,
			to:    domain.OrderStatusDelivering,
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetOrder(gomock.Any(), ready.ID).Return(&ready, nil)
			},
			expError: domain.ErrInvalidTransition,
		},
		{
			name:  "skipping a stage rejected",
			order: confirmed,
			to:    domain.OrderStatusCompleted,
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetOrder(gomock.Any(), confirmed.ID).Return(&confirmed, nil)
			},
			expError: domain.ErrInvalidTransition,
		},
		{
			name:  "terminal order stays terminal",
			order: completed,
			to:    domain.OrderStatusCancelled,
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetOrder(gomock.Any(), completed.ID).Return(&completed, nil)
			},
			expError: domain.ErrInvalidTransition,
		},
		{
			name:  "lost race with concurrent transition",
			order: confirmed,
			to:    domain.OrderStatusPreparing,
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetOrder(gomock.Any(), confirmed.ID).Return(&confirmed, nil)
				repo.EXPECT().UpdateOrderStatus(gomock.Any(), confirmed.ID,
					domain.OrderStatusConfirmed, domain.OrderStatusPreparing, "").
					Return(nil, domain.ErrNoUpdatedData)
			},
			expError: domain.ErrInvalidTransition,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			test.mock(repo)
			s := newTestService(t, repo)

			result, err := s.Transition(context.Background(), test.order.ID, test.to, "")

			if test.expError == nil {
				assert.NoError(t, err)
				assert.Equal(t, test.to, result.Status)
			} else {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, result)
			}
		})
	}
}

func TestService_CancelOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	type cancelTest struct {
		name     string
		order    domain.Order
		mock     prepareMocks
		expError error
	}

	preparing := domain.Order{ID: 1, Status: domain.OrderStatusPreparing}
	delivered := domain.Order{ID: 2, Status: domain.OrderStatusDelivered}

	tests := []cancelTest{
		{
			name:  "cancel active order",
			order: preparing,
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetOrder(gomock.Any(), preparing.ID).Return(&preparing, nil)
				repo.EXPECT().CancelOrder(gomock.Any(), preparing.ID, "customer request").
					Return(&domain.Order{ID: 1, Status: domain.OrderStatusCancelled}, nil)
			},
			expError: nil,
		},
		{
			name:  "terminal order rejected",
			order: delivered,
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetOrder(gomock.Any(), delivered.ID).Return(&delivered, nil)
			},
			expError: domain.ErrInvalidTransition,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			test.mock(repo)
			s := newTestService(t, repo)

			result, err := s.CancelOrder(context.Background(), test.order.ID, "customer request")

			if test.expError == nil {
				assert.NoError(t, err)
				assert.Equal(t, domain.OrderStatusCancelled, result.Status)
			} else {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, result)
			}
		})
	}
}

func TestService_AcknowledgeOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	repo := mock.NewMockRepository(mockCtrl)
	repo.EXPECT().GetOrder(gomock.Any(), uint64(1)).
		Return(&domain.Order{ID: 1, Status: domain.OrderStatusConfirmed}, nil)
	repo.EXPECT().AcknowledgeOrder(gomock.Any(), uint64(1)).Return(nil)
	repo.EXPECT().GetOrder(gomock.Any(), uint64(2)).
		Return(&domain.Order{ID: 2, Status: domain.OrderStatusCancelled}, nil)

	s := newTestService(t, repo)

	assert.NoError(t, s.AcknowledgeOrder(context.Background(), 1))
	assert.ErrorIs(t, s.AcknowledgeOrder(context.Background(), 2), domain.ErrInvalidTransition)
}
