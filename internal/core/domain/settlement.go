package domain

import (
	"time"

	"github.com/govalues/decimal"
)

// SettlementReceipt summarizes one completed restaurant batch.
type SettlementReceipt struct {
	RestaurantID uint64
	Reference    string
	OrderIDs     []uint64
	Total        decimal.Decimal
	CompletedAt  time.Time
}

// NextSettlementDate returns the next occurrence of the weekly
// settlement day strictly after the given time. Computation landing
// on the settlement day itself rolls over to the following week.
func NextSettlementDate(after time.Time, day time.Weekday) time.Time {
	date := time.Date(after.Year(), after.Month(), after.Day(), 0, 0, 0, 0, after.Location())
	days := (int(day) - int(date.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return date.AddDate(0, 0, days)
}
