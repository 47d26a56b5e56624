package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/rescuebite/rescuebite/internal/core/domain"
	"github.com/rescuebite/rescuebite/internal/core/port/mock"
	"github.com/stretchr/testify/assert"
)

func TestService_CreatePackage(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	type createPackageTest struct {
		name      string
		pkg       domain.Package
		mock      prepareMocks
		expStatus domain.PackageStatus
		expError  error
	}

	tests := []createPackageTest{
		{
			name: "stocked package starts active",
			pkg:  domain.Package{RestaurantID: 7, Name: "Surprise bag", DiscountedPrice: decimal.MustParse("5.50"), AvailableQuantity: 3},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().CreatePackage(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Package) (*domain.Package, error) {
						assert.Equal(t, domain.PackageStatusActive, p.Status)
						p.ID = 42
						return p, nil
					})
			},
			expStatus: domain.PackageStatusActive,
		},
		{
			name: "empty package starts inactive",
			pkg:  domain.Package{RestaurantID: 7, Name: "Surprise bag", AvailableQuantity: 0},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().CreatePackage(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Package) (*domain.Package, error) {
						assert.Equal(t, domain.PackageStatusInactive, p.Status)
						p.ID = 43
						return p, nil
					})
			},
			expStatus: domain.PackageStatusInactive,
		},
		{
			name:     "negative quantity rejected",
			pkg:      domain.Package{RestaurantID: 7, AvailableQuantity: -1},
			mock:     func(repo *mock.MockRepository) {},
			expError: domain.ErrBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			test.mock(repo)
			s := newTestService(t, repo)

			result, err := s.CreatePackage(context.Background(), &test.pkg)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.expStatus, result.Status)
		})
	}
}

func TestService_DeactivatePackage(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	repo := mock.NewMockRepository(mockCtrl)
	repo.EXPECT().DeactivatePackage(gomock.Any(), uint64(42)).
		Return(&domain.Package{ID: 42, AvailableQuantity: 3, Status: domain.PackageStatusInactive}, nil)
	repo.EXPECT().DeactivatePackage(gomock.Any(), uint64(99)).
		Return(nil, domain.ErrDataNotFound)

	s := newTestService(t, repo)

	pkg, err := s.DeactivatePackage(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, domain.PackageStatusInactive, pkg.Status)

	_, err = s.DeactivatePackage(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrDataNotFound)
}

func TestService_ReactivatePackage(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	repo := mock.NewMockRepository(mockCtrl)
	repo.EXPECT().ReactivatePackage(gomock.Any(), uint64(42), 5).
		Return(&domain.Package{ID: 42, AvailableQuantity: 5, Status: domain.PackageStatusActive}, nil)

	s := newTestService(t, repo)

	pkg, err := s.ReactivatePackage(context.Background(), 42, 5)
	assert.NoError(t, err)
	assert.Equal(t, domain.PackageStatusActive, pkg.Status)
	assert.Equal(t, 5, pkg.AvailableQuantity)

	_, err = s.ReactivatePackage(context.Background(), 42, 0)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}
