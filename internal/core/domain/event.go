package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event names published through the outbox.
const (
	EventOrderCreated        = "order.created"
	EventOrderConfirmed      = "order.confirmed"
	EventOrderStatusChanged  = "order.status_changed"
	EventOrderCancelled      = "order.cancelled"
	EventPackageReactivated  = "package.reactivated"
	EventSettlementCompleted = "settlement.completed"
)

// Event is one row of the transactional outbox. The core appends
// events inside its own transactions; the dispatcher drains them
// independently, so a failed publish can never touch order state.
type Event struct {
	ID        uuid.UUID
	Name      string
	Payload   []byte
	Attempts  int
	CreatedAt time.Time
	SentAt    *time.Time
}
