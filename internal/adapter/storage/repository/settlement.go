package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/govalues/decimal"
	"github.com/jackc/pgx/v5"
	"github.com/rescuebite/rescuebite/internal/core/domain"
)

// ComputeOrderCommission writes the commission values with a
// set-if-null guard on commission_computed_at and bumps the
// restaurant's pending balance and total earned in the same
// transaction. A second invocation finds the guard set and gets
// ErrAlreadyComputed without touching anything.
func (r *Repository) ComputeOrderCommission(ctx context.Context, orderID uint64,
	c domain.Commission, scheduledFor time.Time) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		statement := r.db.QueryBuilder.Update("orders").
			Set("commission_rate", c.Rate).
			Set("platform_revenue", c.PlatformRevenue).
			Set("restaurant_payout", c.RestaurantPayout).
			Set("commission_computed_at", c.ComputedAt).
			Set("settlement_scheduled_for", scheduledFor).
			Where(sq.Eq{"id": orderID}).
			Where("commission_computed_at IS NULL").
			Suffix("RETURNING restaurant_id")

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		var restaurantID uint64
		err = tx.QueryRow(ctx, sql, args...).Scan(&restaurantID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return r.computedConflict(ctx, tx, orderID)
			}
			return err
		}

		balance := r.db.QueryBuilder.Update("restaurants").
			Set("pending_balance", sq.Expr("pending_balance + ?", c.RestaurantPayout)).
			Set("total_earned", sq.Expr("total_earned + ?", c.RestaurantPayout)).
			Where(sq.Eq{"id": restaurantID})

		sql, args, err = balance.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		return err
	})
	if err != nil {
		return nil, err
	}

	return r.GetOrder(ctx, orderID)
}

func (r *Repository) computedConflict(ctx context.Context, tx pgx.Tx, orderID uint64) error {
	statement := r.db.QueryBuilder.
		Select("commission_computed_at").
		From("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	var computedAt *time.Time
	err = tx.QueryRow(ctx, sql, args...).Scan(&computedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.ErrDataNotFound
		}
		return err
	}
	if computedAt != nil {
		return domain.ErrAlreadyComputed
	}
	return domain.ErrInternal
}

// ListSettlementDueRestaurants feeds the scheduler: every restaurant
// with at least one computed order scheduled on or before asOf.
func (r *Repository) ListSettlementDueRestaurants(ctx context.Context, asOf time.Time) ([]uint64, error) {
	statement := r.db.QueryBuilder.
		Select("restaurant_id").Distinct().
		From("orders").
		Where(sq.Eq{"settlement_status": domain.SettlementStatusPending}).
		Where(sq.NotEq{"payment_status": domain.PaymentStatusRefunded}).
		Where("commission_computed_at IS NOT NULL").
		Where(sq.LtOrEq{"settlement_scheduled_for": asOf}).
		OrderBy("restaurant_id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0)
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *Repository) ListSettlementDue(ctx context.Context, restaurantID uint64, asOf time.Time) ([]uint64, error) {
	statement := r.db.QueryBuilder.
		Select("id").
		From("orders").
		Where(sq.Eq{"restaurant_id": restaurantID, "settlement_status": domain.SettlementStatusPending}).
		Where(sq.NotEq{"payment_status": domain.PaymentStatusRefunded}).
		Where("commission_computed_at IS NOT NULL").
		Where(sq.LtOrEq{"settlement_scheduled_for": asOf}).
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0)
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// CompleteSettlementBatch settles the given orders and moves the
// restaurant balance from pending to paid in one transaction. Only
// rows still pending count toward the sum, so re-running a batch on
// already-completed orders changes nothing. Refunded orders are
// excluded here too, in case one was cancelled between listing and
// completion.
func (r *Repository) CompleteSettlementBatch(ctx context.Context, restaurantID uint64,
	orderIDs []uint64, reference string) (*domain.SettlementReceipt, error) {
	receipt := &domain.SettlementReceipt{
		RestaurantID: restaurantID,
		Reference:    reference,
		Total:        decimal.Zero,
		CompletedAt:  time.Now(),
	}

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		statement := r.db.QueryBuilder.Update("orders").
			Set("settlement_status", domain.SettlementStatusCompleted).
			Set("settlement_completed_at", receipt.CompletedAt).
			Set("settlement_reference", reference).
			Where(sq.Eq{
				"id":                orderIDs,
				"restaurant_id":     restaurantID,
				"settlement_status": domain.SettlementStatusPending,
			}).
			Where(sq.NotEq{"payment_status": domain.PaymentStatusRefunded}).
			Suffix("RETURNING id, restaurant_payout")

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		rows, err := tx.Query(ctx, sql, args...)
		if err != nil {
			return err
		}

		for rows.Next() {
			var id uint64
			var payout decimal.Decimal
			if err := rows.Scan(&id, &payout); err != nil {
				return err
			}
			receipt.OrderIDs = append(receipt.OrderIDs, id)
			receipt.Total, err = receipt.Total.Add(payout)
			if err != nil {
				return err
			}
		}
		if err := rows.Err(); err != nil {
			return err
		}

		if len(receipt.OrderIDs) == 0 {
			// Everything was settled already; nothing to move.
			return nil
		}

		balance := r.db.QueryBuilder.Update("restaurants").
			Set("pending_balance", sq.Expr("pending_balance - ?", receipt.Total)).
			Set("paid_balance", sq.Expr("paid_balance + ?", receipt.Total)).
			Where(sq.Eq{"id": restaurantID})

		sql, args, err = balance.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		return r.appendEvent(ctx, tx, domain.EventSettlementCompleted, map[string]any{
			"restaurant_id": restaurantID,
			"reference":     reference,
			"order_ids":     receipt.OrderIDs,
			"total":         receipt.Total,
		})
	})
	if err != nil {
		return nil, err
	}

	return receipt, nil
}
