package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/govalues/decimal"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rescuebite/rescuebite/internal/core/domain"
)

func (r *Repository) CreateRestaurant(ctx context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error) {
	statement := r.db.QueryBuilder.Insert("restaurants").
		Columns("name", "status", "commission_rate", "pending_balance", "paid_balance", "total_earned").
		Values(restaurant.Name, restaurant.Status, restaurant.CommissionRate,
			decimal.Zero, decimal.Zero, decimal.Zero).
		Suffix("RETURNING id, created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&restaurant.ID, &restaurant.CreatedAt)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	restaurant.PendingBalance = decimal.Zero
	restaurant.PaidBalance = decimal.Zero
	restaurant.TotalEarned = decimal.Zero
	return restaurant, nil
}

func (r *Repository) GetRestaurant(ctx context.Context, id uint64) (*domain.Restaurant, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "status", "commission_rate",
			"pending_balance", "paid_balance", "total_earned", "created_at").
		From("restaurants").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	restaurant := domain.Restaurant{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Status,
		&restaurant.CommissionRate,
		&restaurant.PendingBalance,
		&restaurant.PaidBalance,
		&restaurant.TotalEarned,
		&restaurant.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &restaurant, nil
}
