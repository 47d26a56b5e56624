package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type RestaurantStatus string

const (
	RestaurantStatusActive    RestaurantStatus = "ACTIVE"
	RestaurantStatusSuspended RestaurantStatus = "SUSPENDED"
)

// Restaurant carries the payout counters. PendingBalance and
// PaidBalance are mutated only by the commission and settlement
// repository operations, always as atomic increments.
type Restaurant struct {
	ID             uint64
	Name           string
	Status         RestaurantStatus
	CommissionRate *decimal.Decimal
	PendingBalance decimal.Decimal
	PaidBalance    decimal.Decimal
	TotalEarned    decimal.Decimal
	CreatedAt      time.Time
}
