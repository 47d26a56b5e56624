package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/rescuebite/rescuebite/internal/core/domain"
	"github.com/rescuebite/rescuebite/internal/core/port/mock"
	"github.com/rescuebite/rescuebite/internal/core/service"
	"github.com/stretchr/testify/assert"
)

func TestSplitTotal(t *testing.T) {
	type splitTest struct {
		name       string
		total      string
		rate       string
		expRevenue string
		expPayout  string
	}

	tests := []splitTest{
		{name: "round split", total: "100.00", rate: "10", expRevenue: "10.00", expPayout: "90.00"},
		{name: "rounds to cents", total: "10.99", rate: "15", expRevenue: "1.65", expPayout: "9.34"},
		{name: "zero rate", total: "42.00", rate: "0", expRevenue: "0.00", expPayout: "42.00"},
		{name: "small total", total: "0.01", rate: "10", expRevenue: "0.00", expPayout: "0.01"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			commission, err := service.SplitTotal(
				decimal.MustParse(test.total), decimal.MustParse(test.rate))
			assert.NoError(t, err)

			assert.Zero(t, commission.PlatformRevenue.Cmp(decimal.MustParse(test.expRevenue)))
			assert.Zero(t, commission.RestaurantPayout.Cmp(decimal.MustParse(test.expPayout)))
			assert.NotNil(t, commission.ComputedAt)

			// The split is exact: revenue and payout always recompose
			// the total.
			sum, err := commission.PlatformRevenue.Add(commission.RestaurantPayout)
			assert.NoError(t, err)
			assert.Zero(t, sum.Cmp(decimal.MustParse(test.total)))
		})
	}
}

func TestService_ConfirmPayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	paid := domain.Order{
		ID:            1,
		RestaurantID:  7,
		Total:         decimal.MustParse("100.00"),
		Status:        domain.OrderStatusConfirmed,
		PaymentStatus: domain.PaymentStatusPaid,
	}
	restaurant := domain.Restaurant{ID: 7, Status: domain.RestaurantStatusActive}
	override := decimal.MustParse("20")
	withOverride := domain.Restaurant{ID: 7, Status: domain.RestaurantStatusActive, CommissionRate: &override}

	type confirmTest struct {
		name     string
		mock     prepareMocks
		expError error
	}

	tests := []confirmTest{
		{
			name: "confirm computes commission at default rate",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ConfirmOrderPayment(gomock.Any(), paid.ID, "tx-1").Return(&paid, nil)
				repo.EXPECT().GetRestaurant(gomock.Any(), paid.RestaurantID).Return(&restaurant, nil)
				repo.EXPECT().ComputeOrderCommission(gomock.Any(), paid.ID, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uint64, c domain.Commission, scheduledFor time.Time) (*domain.Order, error) {
						assert.Zero(t, c.PlatformRevenue.Cmp(decimal.MustParse("10")))
						assert.Zero(t, c.RestaurantPayout.Cmp(decimal.MustParse("90")))
						assert.Equal(t, time.Monday, scheduledFor.Weekday())
						assert.True(t, scheduledFor.After(*c.ComputedAt))
						return &paid, nil
					})
				repo.EXPECT().GetOrder(gomock.Any(), paid.ID).Return(&paid, nil)
			},
			expError: nil,
		},
		{
			name: "restaurant override wins over default rate",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ConfirmOrderPayment(gomock.Any(), paid.ID, "tx-1").Return(&paid, nil)
				repo.EXPECT().GetRestaurant(gomock.Any(), paid.RestaurantID).Return(&withOverride, nil)
				repo.EXPECT().ComputeOrderCommission(gomock.Any(), paid.ID, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uint64, c domain.Commission, _ time.Time) (*domain.Order, error) {
						assert.Zero(t, c.PlatformRevenue.Cmp(decimal.MustParse("20")))
						assert.Zero(t, c.RestaurantPayout.Cmp(decimal.MustParse("80")))
						return &paid, nil
					})
				repo.EXPECT().GetOrder(gomock.Any(), paid.ID).Return(&paid, nil)
			},
			expError: nil,
		},
		{
			name: "duplicate signal surfaces already confirmed",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ConfirmOrderPayment(gomock.Any(), paid.ID, "tx-1").
					Return(nil, domain.ErrAlreadyConfirmed)
			},
			expError: domain.ErrAlreadyConfirmed,
		},
		{
			name: "duplicate commission trigger is a no-op",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ConfirmOrderPayment(gomock.Any(), paid.ID, "tx-1").Return(&paid, nil)
				repo.EXPECT().GetRestaurant(gomock.Any(), paid.RestaurantID).Return(&restaurant, nil)
				repo.EXPECT().ComputeOrderCommission(gomock.Any(), paid.ID, gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrAlreadyComputed)
				repo.EXPECT().GetOrder(gomock.Any(), paid.ID).Return(&paid, nil)
			},
			expError: nil,
		},
		{
			name: "commission failure leaves the order paid",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ConfirmOrderPayment(gomock.Any(), paid.ID, "tx-1").Return(&paid, nil)
				repo.EXPECT().GetRestaurant(gomock.Any(), paid.RestaurantID).
					Return(nil, domain.ErrInternal)
				repo.EXPECT().GetOrder(gomock.Any(), paid.ID).Return(&paid, nil)
			},
			expError: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			test.mock(repo)
			s := newTestService(t, repo)

			result, err := s.ConfirmPayment(context.Background(), paid.ID, "tx-1")

			if test.expError == nil {
				assert.NoError(t, err)
				assert.Equal(t, domain.PaymentStatusPaid, result.PaymentStatus)
			} else {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, result)
			}
		})
	}
}
