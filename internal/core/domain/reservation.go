package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReservationState string

const (
	ReservationHeld      ReservationState = "HELD"
	ReservationCommitted ReservationState = "COMMITTED"
	ReservationReleased  ReservationState = "RELEASED"
)

// Reservation is a provisional hold on package quantity. The stock
// decrement happens when the hold is taken; commit makes it
// permanent, release gives the quantity back.
type Reservation struct {
	ID        uuid.UUID
	OrderID   uint64
	PackageID uint64
	Quantity  int
	State     ReservationState
	CreatedAt time.Time
}
