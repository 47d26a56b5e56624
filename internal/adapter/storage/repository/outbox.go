package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/rescuebite/rescuebite/internal/core/domain"
)

func (r *Repository) PendingEvents(ctx context.Context, limit int) ([]*domain.Event, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "payload", "attempts", "created_at", "sent_at").
		From("outbox_events").
		Where("sent_at IS NULL").
		OrderBy("created_at").
		Limit(uint64(limit))

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	events := make([]*domain.Event, 0)
	for rows.Next() {
		event := domain.Event{}
		err := rows.Scan(
			&event.ID,
			&event.Name,
			&event.Payload,
			&event.Attempts,
			&event.CreatedAt,
			&event.SentAt,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, &event)
	}

	return events, rows.Err()
}

func (r *Repository) MarkEventSent(ctx context.Context, id uuid.UUID) error {
	statement := r.db.QueryBuilder.Update("outbox_events").
		Set("sent_at", time.Now()).
		Where(sq.Eq{"id": id}).
		Where("sent_at IS NULL")

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNoUpdatedData
	}
	return nil
}

func (r *Repository) MarkEventFailed(ctx context.Context, id uuid.UUID) error {
	statement := r.db.QueryBuilder.Update("outbox_events").
		Set("attempts", sq.Expr("attempts + 1")).
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
