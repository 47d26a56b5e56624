package service

import (
	"context"

	"github.com/rescuebite/rescuebite/internal/core/domain"
	"go.uber.org/zap"
)

func (s *Service) CreatePackage(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	if pkg.AvailableQuantity < 0 {
		return nil, domain.ErrBadRequest
	}
	pkg.Status = domain.PackageStatusActive
	if pkg.AvailableQuantity == 0 {
		pkg.Status = domain.PackageStatusInactive
	}

	created, err := s.repo.CreatePackage(ctx, pkg)
	if err != nil {
		s.logger.Error("create package", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// UpdatePackage edits listing fields only. Quantity and status are
// owned by the inventory ledger and reactivation.
func (s *Service) UpdatePackage(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	updated, err := s.repo.UpdatePackage(ctx, pkg)
	if err != nil {
		s.logger.Error("update package", zap.Uint64("package", pkg.ID), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// DeactivatePackage soft-retires a listing. Remaining quantity stays
// on the row, so a later reactivation starts from a clean slate.
func (s *Service) DeactivatePackage(ctx context.Context, packageID uint64) (*domain.Package, error) {
	pkg, err := s.repo.DeactivatePackage(ctx, packageID)
	if err != nil {
		s.logger.Error("deactivate package", zap.Uint64("package", packageID), zap.Error(err))
		return nil, err
	}
	return pkg, nil
}

// ReactivatePackage is the explicit operator action that brings an
// exhausted package back with fresh quantity. Interested consumers
// are notified through the outbox.
func (s *Service) ReactivatePackage(ctx context.Context, packageID uint64, quantity int) (*domain.Package, error) {
	if quantity <= 0 {
		return nil, domain.ErrBadRequest
	}

	pkg, err := s.repo.ReactivatePackage(ctx, packageID, quantity)
	if err != nil {
		s.logger.Error("reactivate package", zap.Uint64("package", packageID), zap.Error(err))
		return nil, err
	}
	return pkg, nil
}

func (s *Service) ListPackages(ctx context.Context, restaurantID uint64) ([]*domain.Package, error) {
	list, err := s.repo.ListPackagesByRestaurant(ctx, restaurantID)
	if err != nil {
		s.logger.Error("list packages", zap.Uint64("restaurant", restaurantID), zap.Error(err))
		return nil, err
	}
	return list, nil
}
