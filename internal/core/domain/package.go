package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type PackageStatus string

const (
	PackageStatusActive   PackageStatus = "ACTIVE"
	PackageStatusInactive PackageStatus = "INACTIVE"
)

// Package is a discounted surplus offer listed by a restaurant.
// AvailableQuantity is only ever changed through the inventory
// ledger operations of the repository, never assigned directly.
type Package struct {
	ID                uint64
	RestaurantID      uint64
	Name              string
	Description       string
	UnitPrice         decimal.Decimal
	DiscountedPrice   decimal.Decimal
	AvailableQuantity int
	Status            PackageStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
