package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rescuebite/rescuebite/internal/core/domain"
)

func (r *Repository) CreatePackage(ctx context.Context, p *domain.Package) (*domain.Package, error) {
	statement := r.db.QueryBuilder.Insert("packages").
		Columns("restaurant_id", "name", "description", "unit_price", "discounted_price",
			"available_quantity", "status").
		Values(p.RestaurantID, p.Name, p.Description, p.UnitPrice, p.DiscountedPrice,
			p.AvailableQuantity, p.Status).
		Suffix("RETURNING id, created_at, updated_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *Repository) UpdatePackage(ctx context.Context, p *domain.Package) (*domain.Package, error) {
	statement := r.db.QueryBuilder.Update("packages").
		Set("name", p.Name).
		Set("description", p.Description).
		Set("unit_price", p.UnitPrice).
		Set("discounted_price", p.DiscountedPrice).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": p.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrDataNotFound
	}

	return r.GetPackage(ctx, p.ID)
}

func (r *Repository) GetPackage(ctx context.Context, id uint64) (*domain.Package, error) {
	statement := r.db.QueryBuilder.
		Select("id", "restaurant_id", "name", "description", "unit_price", "discounted_price",
			"available_quantity", "status", "created_at", "updated_at").
		From("packages").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	p := domain.Package{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&p.ID,
		&p.RestaurantID,
		&p.Name,
		&p.Description,
		&p.UnitPrice,
		&p.DiscountedPrice,
		&p.AvailableQuantity,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &p, nil
}

func (r *Repository) ListPackagesByRestaurant(ctx context.Context, restaurantID uint64) ([]*domain.Package, error) {
	statement := r.db.QueryBuilder.
		Select("id", "restaurant_id", "name", "description", "unit_price", "discounted_price",
			"available_quantity", "status", "created_at", "updated_at").
		From("packages").
		Where(sq.Eq{"restaurant_id": restaurantID}).
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Package, 0)
	for rows.Next() {
		p := domain.Package{}
		err := rows.Scan(
			&p.ID,
			&p.RestaurantID,
			&p.Name,
			&p.Description,
			&p.UnitPrice,
			&p.DiscountedPrice,
			&p.AvailableQuantity,
			&p.Status,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// DeactivatePackage retires a listing without touching its quantity.
// Already-inactive packages pass through unchanged.
func (r *Repository) DeactivatePackage(ctx context.Context, id uint64) (*domain.Package, error) {
	statement := r.db.QueryBuilder.Update("packages").
		Set("status", domain.PackageStatusInactive).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrDataNotFound
	}

	return r.GetPackage(ctx, id)
}

// ReactivatePackage brings an exhausted package back with fresh
// quantity and notifies interested consumers through the outbox.
func (r *Repository) ReactivatePackage(ctx context.Context, id uint64, quantity int) (*domain.Package, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		statement := r.db.QueryBuilder.Update("packages").
			Set("available_quantity", quantity).
			Set("status", domain.PackageStatusActive).
			Set("updated_at", time.Now()).
			Where(sq.Eq{"id": id})

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrDataNotFound
		}

		return r.appendEvent(ctx, tx, domain.EventPackageReactivated, map[string]any{
			"package_id": id,
			"quantity":   quantity,
		})
	})
	if err != nil {
		return nil, err
	}

	return r.GetPackage(ctx, id)
}

// ReserveStock is the atomic conditional decrement: the quantity
// check and the subtraction are one UPDATE, so two concurrent
// requests for the last unit cannot both succeed.
func (r *Repository) ReserveStock(ctx context.Context, packageID uint64, quantity int) (*domain.Reservation, error) {
	reservation := &domain.Reservation{
		ID:        uuid.New(),
		PackageID: packageID,
		Quantity:  quantity,
		State:     domain.ReservationHeld,
		CreatedAt: time.Now(),
	}

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		statement := r.db.QueryBuilder.Update("packages").
			Set("available_quantity", sq.Expr("available_quantity - ?", quantity)).
			Set("updated_at", time.Now()).
			Where(sq.Eq{"id": packageID}).
			Where(sq.GtOrEq{"available_quantity": quantity})

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return r.insufficientStock(ctx, tx, packageID, quantity)
		}

		insert := r.db.QueryBuilder.Insert("reservations").
			Columns("id", "package_id", "quantity", "state", "created_at").
			Values(reservation.ID, reservation.PackageID, reservation.Quantity,
				reservation.State, reservation.CreatedAt)

		sql, args, err = insert.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		return err
	})
	if err != nil {
		return nil, err
	}

	return reservation, nil
}

// insufficientStock reads the current quantity so the error carries
// the exact shortfall.
func (r *Repository) insufficientStock(ctx context.Context, tx pgx.Tx, packageID uint64, requested int) error {
	statement := r.db.QueryBuilder.
		Select("available_quantity").
		From("packages").
		Where(sq.Eq{"id": packageID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	var available int
	err = tx.QueryRow(ctx, sql, args...).Scan(&available)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.ErrDataNotFound
		}
		return err
	}

	return &domain.InsufficientStockError{
		PackageID: packageID,
		Requested: requested,
		Available: available,
	}
}

// ReleaseReservation undoes a hold: the reservation flips to
// released and the quantity goes back. Committed reservations are
// not touched here; their compensation path lives in CancelOrder.
func (r *Repository) ReleaseReservation(ctx context.Context, reservationID uuid.UUID) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		statement := r.db.QueryBuilder.Update("reservations").
			Set("state", domain.ReservationReleased).
			Where(sq.Eq{"id": reservationID, "state": domain.ReservationHeld}).
			Suffix("RETURNING package_id, quantity")

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		var packageID uint64
		var quantity int
		err = tx.QueryRow(ctx, sql, args...).Scan(&packageID, &quantity)
		if err != nil {
			if err == pgx.ErrNoRows {
				return domain.ErrNoUpdatedData
			}
			return err
		}

		return restoreQuantity(ctx, tx, r, packageID, quantity)
	})
}

func restoreQuantity(ctx context.Context, tx pgx.Tx, r *Repository, packageID uint64, quantity int) error {
	statement := r.db.QueryBuilder.Update("packages").
		Set("available_quantity", sq.Expr("available_quantity + ?", quantity)).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": packageID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, sql, args...)
	return err
}
