package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusPreparing  OrderStatus = "PREPARING"
	OrderStatusReady      OrderStatus = "READY"
	OrderStatusDelivering OrderStatus = "DELIVERING"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "CASH"
	PaymentMethodCard   PaymentMethod = "CARD"
	PaymentMethodOnline PaymentMethod = "ONLINE"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

type FulfillmentType string

const (
	FulfillmentPickup   FulfillmentType = "PICKUP"
	FulfillmentDelivery FulfillmentType = "DELIVERY"
)

// orderTransitions is the fulfillment state machine. Delivery-only
// states are additionally gated by the order's fulfillment type in
// CanTransition.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing:  {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:      {OrderStatusCompleted, OrderStatusDelivering, OrderStatusCancelled},
	OrderStatusDelivering: {OrderStatusDelivered, OrderStatusCancelled},
}

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusDelivered || s == OrderStatusCancelled
}

// OrderItem is a snapshot of the package at purchase time. It never
// changes again, even if the package record does.
type OrderItem struct {
	PackageID uint64
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// StatusChange is one entry of the append-only order history.
type StatusChange struct {
	From   OrderStatus
	To     OrderStatus
	Reason string
	At     time.Time
}

// Commission is populated exactly once, when the order becomes paid.
// ComputedAt doubles as the idempotence guard: while nil the values
// are meaningless, once set they are immutable.
type Commission struct {
	Rate             decimal.Decimal
	PlatformRevenue  decimal.Decimal
	RestaurantPayout decimal.Decimal
	ComputedAt       *time.Time
}

type SettlementStatus string

const (
	SettlementStatusPending    SettlementStatus = "PENDING"
	SettlementStatusProcessing SettlementStatus = "PROCESSING"
	SettlementStatusCompleted  SettlementStatus = "COMPLETED"
	SettlementStatusFailed     SettlementStatus = "FAILED"
)

// Settlement tracks the order's share of a weekly payout batch.
type Settlement struct {
	Status       SettlementStatus
	ScheduledFor *time.Time
	CompletedAt  *time.Time
	Reference    string
}

type Order struct {
	ID             uint64
	CustomerID     uint64
	RestaurantID   uint64
	Items          []OrderItem
	Total          decimal.Decimal
	PaymentMethod  PaymentMethod
	PaymentStatus  PaymentStatus
	Fulfillment    FulfillmentType
	Status         OrderStatus
	TransactionRef string
	Acknowledged   bool
	Commission     Commission
	Settlement     Settlement
	History        []StatusChange
	CreatedAt      time.Time
}

// CanTransition reports whether the order may move to the given
// status. Delivery states are rejected for pickup orders.
func (o *Order) CanTransition(to OrderStatus) bool {
	if to == OrderStatusDelivering && o.Fulfillment != FulfillmentDelivery {
		return false
	}
	for _, next := range orderTransitions[o.Status] {
		if next == to {
			return true
		}
	}
	return false
}
