package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/jackc/pgx/v5"
	"github.com/rescuebite/rescuebite/internal/core/domain"
)

var orderColumns = []string{
	"id", "customer_id", "restaurant_id", "total",
	"payment_method", "payment_status", "fulfillment", "status",
	"transaction_ref", "acknowledged",
	"commission_rate", "platform_revenue", "restaurant_payout", "commission_computed_at",
	"settlement_status", "settlement_scheduled_for", "settlement_completed_at", "settlement_reference",
	"created_at",
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	o := domain.Order{}
	err := row.Scan(
		&o.ID,
		&o.CustomerID,
		&o.RestaurantID,
		&o.Total,
		&o.PaymentMethod,
		&o.PaymentStatus,
		&o.Fulfillment,
		&o.Status,
		&o.TransactionRef,
		&o.Acknowledged,
		&o.Commission.Rate,
		&o.Commission.PlatformRevenue,
		&o.Commission.RestaurantPayout,
		&o.Commission.ComputedAt,
		&o.Settlement.Status,
		&o.Settlement.ScheduledFor,
		&o.Settlement.CompletedAt,
		&o.Settlement.Reference,
		&o.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &o, nil
}

// CreateOrder persists the order, its item snapshots, the first
// history entry and the order.created outbox event, and attaches the
// already-taken reservations, all in one transaction.
func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order,
	reservations []*domain.Reservation) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		insert := r.db.QueryBuilder.Insert("orders").
			Columns("customer_id", "restaurant_id", "total", "payment_method",
				"payment_status", "fulfillment", "status", "created_at").
			Values(order.CustomerID, order.RestaurantID, order.Total, order.PaymentMethod,
				order.PaymentStatus, order.Fulfillment, order.Status, order.CreatedAt).
			Suffix("RETURNING id")

		sql, args, err := insert.ToSql()
		if err != nil {
			return err
		}

		err = tx.QueryRow(ctx, sql, args...).Scan(&order.ID)
		if err != nil {
			return err
		}

		for _, item := range order.Items {
			itemInsert := r.db.QueryBuilder.Insert("order_items").
				Columns("order_id", "package_id", "name", "unit_price", "quantity").
				Values(order.ID, item.PackageID, item.Name, item.UnitPrice, item.Quantity)

			sql, args, err := itemInsert.ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return err
			}
		}

		ids := make([]uuid.UUID, 0, len(reservations))
		for _, reservation := range reservations {
			ids = append(ids, reservation.ID)
		}
		bind := r.db.QueryBuilder.Update("reservations").
			Set("order_id", order.ID).
			Where(sq.Eq{"id": ids})

		sql, args, err = bind.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		err = r.appendHistory(ctx, tx, order.ID, order.Status, order.Status, "order created")
		if err != nil {
			return err
		}

		return r.appendEvent(ctx, tx, domain.EventOrderCreated, map[string]any{
			"order_id":      order.ID,
			"customer_id":   order.CustomerID,
			"restaurant_id": order.RestaurantID,
			"total":         order.Total,
		})
	})
	if err != nil {
		return nil, err
	}

	return r.GetOrder(ctx, order.ID)
}

func (r *Repository) GetOrder(ctx context.Context, id uint64) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, err
	}

	order.Items, err = r.fetchItems(ctx, id)
	if err != nil {
		return nil, err
	}
	order.History, err = r.fetchHistory(ctx, id)
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (r *Repository) fetchItems(ctx context.Context, orderID uint64) ([]domain.OrderItem, error) {
	statement := r.db.QueryBuilder.
		Select("package_id", "name", "unit_price", "quantity").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		item := domain.OrderItem{}
		if err := rows.Scan(&item.PackageID, &item.Name, &item.UnitPrice, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *Repository) fetchHistory(ctx context.Context, orderID uint64) ([]domain.StatusChange, error) {
	statement := r.db.QueryBuilder.
		Select("from_status", "to_status", "reason", "changed_at").
		From("order_status_history").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	history := make([]domain.StatusChange, 0)
	for rows.Next() {
		change := domain.StatusChange{}
		if err := rows.Scan(&change.From, &change.To, &change.Reason, &change.At); err != nil {
			return nil, err
		}
		history = append(history, change)
	}
	return history, rows.Err()
}

func (r *Repository) ListOrdersByCustomer(ctx context.Context, customerID uint64) ([]*domain.Order, error) {
	return r.listOrders(ctx, sq.Eq{"customer_id": customerID})
}

func (r *Repository) ListOrdersByRestaurant(ctx context.Context, restaurantID uint64) ([]*domain.Order, error) {
	return r.listOrders(ctx, sq.Eq{"restaurant_id": restaurantID})
}

func (r *Repository) listOrders(ctx context.Context, where sq.Eq) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(where).
		OrderBy("created_at DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, order := range list {
		order.Items, err = r.fetchItems(ctx, order.ID)
		if err != nil {
			return nil, err
		}
	}

	return list, nil
}

// ConfirmOrderPayment moves the order to paid/confirmed, commits its
// held reservations and flips any package driven to zero quantity to
// inactive, all in one transaction. A repeated gateway signal finds
// payment_status already PAID and gets ErrAlreadyConfirmed.
func (r *Repository) ConfirmOrderPayment(ctx context.Context, orderID uint64, transactionRef string) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		statement := r.db.QueryBuilder.Update("orders").
			Set("payment_status", domain.PaymentStatusPaid).
			Set("status", domain.OrderStatusConfirmed).
			Set("transaction_ref", transactionRef).
			Where(sq.Eq{
				"id":             orderID,
				"payment_status": domain.PaymentStatusPending,
				"status":         domain.OrderStatusPending,
			})

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return r.confirmConflict(ctx, tx, orderID)
		}

		// Commit the holds. The stock decrement is already in place;
		// commit makes it permanent.
		commit := r.db.QueryBuilder.Update("reservations").
			Set("state", domain.ReservationCommitted).
			Where(sq.Eq{"order_id": orderID, "state": domain.ReservationHeld}).
			Suffix("RETURNING package_id")

		sql, args, err = commit.ToSql()
		if err != nil {
			return err
		}

		rows, err := tx.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		packageIDs := make([]uint64, 0)
		for rows.Next() {
			var packageID uint64
			if err := rows.Scan(&packageID); err != nil {
				return err
			}
			packageIDs = append(packageIDs, packageID)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		// Sold out packages flip inactive in the same atomic step.
		deactivate := r.db.QueryBuilder.Update("packages").
			Set("status", domain.PackageStatusInactive).
			Set("updated_at", time.Now()).
			Where(sq.Eq{"id": packageIDs, "available_quantity": 0})

		sql, args, err = deactivate.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		err = r.appendHistory(ctx, tx, orderID,
			domain.OrderStatusPending, domain.OrderStatusConfirmed, "payment confirmed")
		if err != nil {
			return err
		}

		return r.appendEvent(ctx, tx, domain.EventOrderConfirmed, map[string]any{
			"order_id":        orderID,
			"transaction_ref": transactionRef,
		})
	})
	if err != nil {
		return nil, err
	}

	return r.GetOrder(ctx, orderID)
}

func (r *Repository) confirmConflict(ctx context.Context, tx pgx.Tx, orderID uint64) error {
	statement := r.db.QueryBuilder.
		Select("payment_status").
		From("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	var paymentStatus domain.PaymentStatus
	err = tx.QueryRow(ctx, sql, args...).Scan(&paymentStatus)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.ErrDataNotFound
		}
		return err
	}
	if paymentStatus == domain.PaymentStatusPaid {
		return domain.ErrAlreadyConfirmed
	}
	return domain.ErrInvalidTransition
}

// FailOrderPayment cancels an unpaid order after a failed gateway
// signal and gives every held quantity back.
func (r *Repository) FailOrderPayment(ctx context.Context, orderID uint64, reason string) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		statement := r.db.QueryBuilder.Update("orders").
			Set("payment_status", domain.PaymentStatusFailed).
			Set("status", domain.OrderStatusCancelled).
			Where(sq.Eq{
				"id":             orderID,
				"payment_status": domain.PaymentStatusPending,
				"status":         domain.OrderStatusPending,
			})

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return r.confirmConflict(ctx, tx, orderID)
		}

		if err := r.releaseHeld(ctx, tx, orderID); err != nil {
			return err
		}

		err = r.appendHistory(ctx, tx, orderID,
			domain.OrderStatusPending, domain.OrderStatusCancelled, reason)
		if err != nil {
			return err
		}

		return r.appendEvent(ctx, tx, domain.EventOrderCancelled, map[string]any{
			"order_id": orderID,
			"reason":   reason,
		})
	})
	if err != nil {
		return nil, err
	}

	return r.GetOrder(ctx, orderID)
}

// releaseHeld flips every held reservation of the order to released
// and returns the quantities to their packages.
func (r *Repository) releaseHeld(ctx context.Context, tx pgx.Tx, orderID uint64) error {
	statement := r.db.QueryBuilder.Update("reservations").
		Set("state", domain.ReservationReleased).
		Where(sq.Eq{"order_id": orderID, "state": domain.ReservationHeld}).
		Suffix("RETURNING package_id, quantity")

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	rows, err := tx.Query(ctx, sql, args...)
	if err != nil {
		return err
	}

	type release struct {
		packageID uint64
		quantity  int
	}
	releases := make([]release, 0)
	for rows.Next() {
		var rel release
		if err := rows.Scan(&rel.packageID, &rel.quantity); err != nil {
			return err
		}
		releases = append(releases, rel)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, rel := range releases {
		if err := restoreQuantity(ctx, tx, r, rel.packageID, rel.quantity); err != nil {
			return err
		}
	}
	return nil
}

// UpdateOrderStatus applies one state-machine step with a guard on
// the expected current status, so a concurrent transition makes the
// update a no-op surfaced as ErrNoUpdatedData.
func (r *Repository) UpdateOrderStatus(ctx context.Context, orderID uint64,
	from, to domain.OrderStatus, reason string) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		statement := r.db.QueryBuilder.Update("orders").
			Set("status", to).
			Where(sq.Eq{"id": orderID, "status": from})

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrNoUpdatedData
		}

		if err := r.appendHistory(ctx, tx, orderID, from, to, reason); err != nil {
			return err
		}

		return r.appendEvent(ctx, tx, domain.EventOrderStatusChanged, map[string]any{
			"order_id": orderID,
			"from":     from,
			"to":       to,
		})
	})
	if err != nil {
		return nil, err
	}

	return r.GetOrder(ctx, orderID)
}

// CancelOrder moves a non-terminal order to cancelled. Held
// reservations are released; committed stock was permanently
// decremented, so it comes back through a separate compensating
// increment. A paid order is marked refunded and its unsettled
// payout is taken back out of the restaurant's pending balance.
func (r *Repository) CancelOrder(ctx context.Context, orderID uint64, reason string) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		lock := r.db.QueryBuilder.
			Select("status", "payment_status").
			From("orders").
			Where(sq.Eq{"id": orderID}).
			Suffix("FOR UPDATE")

		sql, args, err := lock.ToSql()
		if err != nil {
			return err
		}

		var status domain.OrderStatus
		var paymentStatus domain.PaymentStatus
		err = tx.QueryRow(ctx, sql, args...).Scan(&status, &paymentStatus)
		if err != nil {
			if err == pgx.ErrNoRows {
				return domain.ErrDataNotFound
			}
			return err
		}
		if status.Terminal() {
			return domain.ErrNoUpdatedData
		}

		newPayment := paymentStatus
		if paymentStatus == domain.PaymentStatusPaid {
			newPayment = domain.PaymentStatusRefunded
		}

		update := r.db.QueryBuilder.Update("orders").
			Set("status", domain.OrderStatusCancelled).
			Set("payment_status", newPayment).
			Where(sq.Eq{"id": orderID})

		sql, args, err = update.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		if err := r.releaseHeld(ctx, tx, orderID); err != nil {
			return err
		}
		if err := r.compensateCommitted(ctx, tx, orderID); err != nil {
			return err
		}
		if newPayment == domain.PaymentStatusRefunded {
			if err := r.reverseUnsettledPayout(ctx, tx, orderID); err != nil {
				return err
			}
		}

		if err := r.appendHistory(ctx, tx, orderID, status, domain.OrderStatusCancelled, reason); err != nil {
			return err
		}

		return r.appendEvent(ctx, tx, domain.EventOrderCancelled, map[string]any{
			"order_id": orderID,
			"reason":   reason,
		})
	})
	if err != nil {
		return nil, err
	}

	return r.GetOrder(ctx, orderID)
}

// compensateCommitted restores stock for reservations whose
// decrement was already made permanent. The reservation rows keep
// the committed state: the sale happened, the compensation is a
// plain inventory increment.
func (r *Repository) compensateCommitted(ctx context.Context, tx pgx.Tx, orderID uint64) error {
	statement := r.db.QueryBuilder.
		Select("package_id", "quantity").
		From("reservations").
		Where(sq.Eq{"order_id": orderID, "state": domain.ReservationCommitted})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	rows, err := tx.Query(ctx, sql, args...)
	if err != nil {
		return err
	}

	type committed struct {
		packageID uint64
		quantity  int
	}
	list := make([]committed, 0)
	for rows.Next() {
		var c committed
		if err := rows.Scan(&c.packageID, &c.quantity); err != nil {
			return err
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, c := range list {
		if err := restoreQuantity(ctx, tx, r, c.packageID, c.quantity); err != nil {
			return err
		}
	}
	return nil
}

// reverseUnsettledPayout takes a refunded order's payout back out of
// the restaurant's pending balance and total earned. The commission
// values on the order stay untouched; a payout that already went out
// in a completed batch is not clawed back here.
func (r *Repository) reverseUnsettledPayout(ctx context.Context, tx pgx.Tx, orderID uint64) error {
	statement := r.db.QueryBuilder.
		Select("restaurant_id", "restaurant_payout").
		From("orders").
		Where(sq.Eq{"id": orderID, "settlement_status": domain.SettlementStatusPending}).
		Where("commission_computed_at IS NOT NULL")

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	var restaurantID uint64
	var payout decimal.Decimal
	err = tx.QueryRow(ctx, sql, args...).Scan(&restaurantID, &payout)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Nothing accrued yet, or the batch already paid out.
			return nil
		}
		return err
	}

	balance := r.db.QueryBuilder.Update("restaurants").
		Set("pending_balance", sq.Expr("pending_balance - ?", payout)).
		Set("total_earned", sq.Expr("total_earned - ?", payout)).
		Where(sq.Eq{"id": restaurantID})

	sql, args, err = balance.ToSql()
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) AcknowledgeOrder(ctx context.Context, orderID uint64) error {
	statement := r.db.QueryBuilder.Update("orders").
		Set("acknowledged", true).
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}
