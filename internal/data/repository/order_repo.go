package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"freelance-marketplace/internal/data/entity"
	"freelance-marketplace/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, updatedAt time.Time) error
	CountByBusinessAndStatus(ctx context.Context, businessID uuid.UUID, status entity.OrderStatus) (int64, error)
}

type orderRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewOrderRepository(db database.Querier, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	features, err := encodeFeatures(order.Features)
	if err != nil {
		return fmt.Errorf("encode features: %w", err)
	}

	query := `
		INSERT INTO orders (id, customer_id, business_id, offer_detail_id,
		                   title, revisions, delivery_time_in_days, price,
		                   features, offer_type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err = r.db.Exec(ctx, query,
		order.ID,
		order.CustomerID,
		order.BusinessID,
		order.OfferDetailID,
		order.Title,
		order.Revisions,
		order.DeliveryTimeInDays,
		order.Price,
		features,
		order.OfferType,
		order.Status,
		order.CreatedAt,
		order.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("customer_id", order.CustomerID.String()),
			zap.String("offer_detail_id", order.OfferDetailID.String()),
		)
		return fmt.Errorf("create order for detail %s by customer %s: %w",
			order.OfferDetailID.String(), order.CustomerID.String(), err)
	}

	return nil
}

func (r *orderRepository) scanOrder(row pgx.Row) (*entity.Order, error) {
	var order entity.Order
	var rawFeatures []byte
	err := row.Scan(
		&order.ID,
		&order.CustomerID,
		&order.BusinessID,
		&order.OfferDetailID,
		&order.Title,
		&order.Revisions,
		&order.DeliveryTimeInDays,
		&order.Price,
		&rawFeatures,
		&order.OfferType,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(rawFeatures) > 0 {
		if err := json.Unmarshal(rawFeatures, &order.Features); err != nil {
			return nil, fmt.Errorf("decode features: %w", err)
		}
	} else {
		order.Features = []string{}
	}

	return &order, nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `
		SELECT id, customer_id, business_id, offer_detail_id, title,
		       revisions, delivery_time_in_days, price, features,
		       offer_type, status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	order, err := r.scanOrder(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	return order, nil
}

func (r *orderRepository) FindAllForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	query := `
		SELECT id, customer_id, business_id, offer_detail_id, title,
		       revisions, delivery_time_in_days, price, features,
		       offer_type, status, created_at, updated_at
		FROM orders
		WHERE customer_id = $1 OR business_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find orders for user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find orders for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, updatedAt time.Time) error {
	query := `UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status, updatedAt)
	if err != nil {
		r.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update order %s status: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %s not found", id.String())
	}

	return nil
}

func (r *orderRepository) CountByBusinessAndStatus(ctx context.Context, businessID uuid.UUID, status entity.OrderStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE business_id = $1 AND status = $2`

	var count int64
	err := r.db.QueryRow(ctx, query, businessID, status).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count orders",
			zap.Error(err),
			zap.String("business_id", businessID.String()),
			zap.String("status", string(status)),
		)
		return 0, fmt.Errorf("count %s orders for business %s: %w",
			status, businessID.String(), err)
	}

	return count, nil
}
