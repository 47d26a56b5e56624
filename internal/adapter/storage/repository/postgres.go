package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rescuebite/rescuebite/internal/adapter/storage"
	"github.com/rescuebite/rescuebite/internal/core/domain"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

// appendEvent inserts an outbox row inside the caller's transaction,
// so the event exists exactly when the business change does.
func (r *Repository) appendEvent(ctx context.Context, tx pgx.Tx, name string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	statement := r.db.QueryBuilder.Insert("outbox_events").
		Columns("id", "name", "payload", "created_at").
		Values(uuid.New(), name, body, time.Now())

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, sql, args...)
	return err
}

// appendHistory records one append-only status change inside the
// caller's transaction.
func (r *Repository) appendHistory(ctx context.Context, tx pgx.Tx,
	orderID uint64, from, to domain.OrderStatus, reason string) error {
	statement := r.db.QueryBuilder.Insert("order_status_history").
		Columns("order_id", "from_status", "to_status", "reason", "changed_at").
		Values(orderID, from, to, reason, time.Now())

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, sql, args...)
	return err
}
