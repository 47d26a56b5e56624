package port

import (
	"context"
	"time"

	"github.com/rescuebite/rescuebite/internal/core/domain"
)

// NewOrderItem is a purchase request line before the package
// snapshot is taken.
type NewOrderItem struct {
	PackageID uint64
	Quantity  int
}

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type Service interface {
	CreateOrder(ctx context.Context, customerID, restaurantID uint64,
		items []NewOrderItem, method domain.PaymentMethod, fulfillment domain.FulfillmentType) (*domain.Order, error)
	ConfirmPayment(ctx context.Context, orderID uint64, transactionRef string) (*domain.Order, error)
	FailPayment(ctx context.Context, orderID uint64, reason string) (*domain.Order, error)
	Transition(ctx context.Context, orderID uint64, to domain.OrderStatus, note string) (*domain.Order, error)
	CancelOrder(ctx context.Context, orderID uint64, reason string) (*domain.Order, error)
	AcknowledgeOrder(ctx context.Context, orderID uint64) error
	GetOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID uint64) ([]*domain.Order, error)
	ListOrdersByRestaurant(ctx context.Context, restaurantID uint64) ([]*domain.Order, error)

	CreatePackage(ctx context.Context, p *domain.Package) (*domain.Package, error)
	UpdatePackage(ctx context.Context, p *domain.Package) (*domain.Package, error)
	DeactivatePackage(ctx context.Context, packageID uint64) (*domain.Package, error)
	ReactivatePackage(ctx context.Context, packageID uint64, quantity int) (*domain.Package, error)
	ListPackages(ctx context.Context, restaurantID uint64) ([]*domain.Package, error)

	GetRestaurantBalance(ctx context.Context, restaurantID uint64) (*domain.Restaurant, error)
	RunSettlementBatch(ctx context.Context, restaurantID uint64, asOf time.Time) (*domain.SettlementReceipt, error)
}

// PaymentSignal is the asynchronous payment-authorized callback
// consumed from the gateway collaborator. Delivery is at-least-once.
type PaymentSignal struct {
	OrderID        uint64
	Authorized     bool
	TransactionRef string
}
