package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/rescuebite/rescuebite/internal/core/domain"
	"github.com/rescuebite/rescuebite/internal/core/port/mock"
	"github.com/stretchr/testify/assert"
)

func TestService_RunSettlementBatch(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	asOf := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	type batchTest struct {
		name      string
		mock      prepareMocks
		expOrders int
		expTotal  string
		expError  error
	}

	tests := []batchTest{
		{
			name: "completes due orders under one reference",
			mock: func(repo *mock.MockRepository) {
				due := []uint64{11, 12, 13}
				repo.EXPECT().ListSettlementDue(gomock.Any(), uint64(7), asOf).Return(due, nil)
				repo.EXPECT().CompleteSettlementBatch(gomock.Any(), uint64(7), due, gomock.Any()).
					DoAndReturn(func(_ context.Context, restaurantID uint64, orderIDs []uint64, reference string) (*domain.SettlementReceipt, error) {
						assert.NotEmpty(t, reference)
						return &domain.SettlementReceipt{
							RestaurantID: restaurantID,
							Reference:    reference,
							OrderIDs:     orderIDs,
							Total:        decimal.MustParse("245.70"),
							CompletedAt:  asOf,
						}, nil
					})
			},
			expOrders: 3,
			expTotal:  "245.70",
		},
		{
			name: "nothing due yields an empty receipt",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ListSettlementDue(gomock.Any(), uint64(7), asOf).Return(nil, nil)
			},
			expOrders: 0,
			expTotal:  "0",
		},
		{
			name: "batch failure is surfaced",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ListSettlementDue(gomock.Any(), uint64(7), asOf).Return([]uint64{11}, nil)
				repo.EXPECT().CompleteSettlementBatch(gomock.Any(), uint64(7), []uint64{11}, gomock.Any()).
					Return(nil, domain.ErrSettlementBatchFailure)
			},
			expError: domain.ErrSettlementBatchFailure,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			test.mock(repo)
			s := newTestService(t, repo)

			receipt, err := s.RunSettlementBatch(context.Background(), 7, asOf)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, receipt)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, receipt.OrderIDs, test.expOrders)
			assert.Zero(t, receipt.Total.Cmp(decimal.MustParse(test.expTotal)))
		})
	}
}
