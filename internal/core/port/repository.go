package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rescuebite/rescuebite/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Restaurant
	CreateRestaurant(ctx context.Context, r *domain.Restaurant) (*domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id uint64) (*domain.Restaurant, error)

	// Package
	CreatePackage(ctx context.Context, p *domain.Package) (*domain.Package, error)
	UpdatePackage(ctx context.Context, p *domain.Package) (*domain.Package, error)
	GetPackage(ctx context.Context, id uint64) (*domain.Package, error)
	ListPackagesByRestaurant(ctx context.Context, restaurantID uint64) ([]*domain.Package, error)
	DeactivatePackage(ctx context.Context, id uint64) (*domain.Package, error)
	ReactivatePackage(ctx context.Context, id uint64, quantity int) (*domain.Package, error)

	// Inventory ledger. ReserveStock decrements available quantity
	// with an atomic conditional update and records a hold;
	// ReleaseReservation gives the quantity back. Commit of held
	// reservations happens inside ConfirmOrderPayment, compensating
	// increments for committed stock inside CancelOrder.
	ReserveStock(ctx context.Context, packageID uint64, quantity int) (*domain.Reservation, error)
	ReleaseReservation(ctx context.Context, reservationID uuid.UUID) error

	// Order
	CreateOrder(ctx context.Context, order *domain.Order, reservations []*domain.Reservation) (*domain.Order, error)
	GetOrder(ctx context.Context, id uint64) (*domain.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID uint64) ([]*domain.Order, error)
	ListOrdersByRestaurant(ctx context.Context, restaurantID uint64) ([]*domain.Order, error)
	ConfirmOrderPayment(ctx context.Context, orderID uint64, transactionRef string) (*domain.Order, error)
	FailOrderPayment(ctx context.Context, orderID uint64, reason string) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uint64, from, to domain.OrderStatus, reason string) (*domain.Order, error)
	CancelOrder(ctx context.Context, orderID uint64, reason string) (*domain.Order, error)
	AcknowledgeOrder(ctx context.Context, orderID uint64) error

	// Commission
	ComputeOrderCommission(ctx context.Context, orderID uint64, c domain.Commission, scheduledFor time.Time) (*domain.Order, error)

	// Settlement
	ListSettlementDueRestaurants(ctx context.Context, asOf time.Time) ([]uint64, error)
	ListSettlementDue(ctx context.Context, restaurantID uint64, asOf time.Time) ([]uint64, error)
	CompleteSettlementBatch(ctx context.Context, restaurantID uint64, orderIDs []uint64, reference string) (*domain.SettlementReceipt, error)

	// Outbox
	PendingEvents(ctx context.Context, limit int) ([]*domain.Event, error)
	MarkEventSent(ctx context.Context, id uuid.UUID) error
	MarkEventFailed(ctx context.Context, id uuid.UUID) error
}
