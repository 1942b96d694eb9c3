package repository

import (
	"context"
	"fmt"
	"strings"

	"freelance-marketplace/internal/data/entity"
	"freelance-marketplace/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// OfferFilter carries the query parameters of GET /api/offers/
type OfferFilter struct {
	CreatorID       *uuid.UUID
	MinPrice        *float64
	MaxDeliveryTime *int
	Search          string
	Ordering        string // updated_at | -updated_at | min_price | -min_price
	Limit           int
	Offset          int
}

type OfferRepository interface {
	Create(ctx context.Context, offer *entity.Offer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.OfferSummary, error)
	FindAll(ctx context.Context, filter OfferFilter) ([]*entity.OfferSummary, error)
	CountAll(ctx context.Context, filter OfferFilter) (int64, error)
	Update(ctx context.Context, offer *entity.Offer) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountTotal(ctx context.Context) (int64, error)
}

type offerRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewOfferRepository(db database.Querier, log *zap.Logger) OfferRepository {
	return &offerRepository{
		db:  db,
		log: log.With(zap.String("repository", "offer")),
	}
}

func (r *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	query := `
		INSERT INTO offers (id, creator_id, title, image, description,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		offer.ID,
		offer.CreatorID,
		offer.Title,
		offer.Image,
		offer.Description,
		offer.CreatedAt,
		offer.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create offer",
			zap.Error(err),
			zap.String("creator_id", offer.CreatorID.String()),
			zap.String("title", offer.Title),
		)
		return fmt.Errorf("create offer %s: %w", offer.Title, err)
	}

	return nil
}

func (r *offerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.OfferSummary, error) {
	query := `
		SELECT o.id, o.creator_id, o.title, o.image, o.description,
		       o.created_at, o.updated_at,
		       (SELECT MIN(d.price) FROM offer_details d WHERE d.offer_id = o.id) AS min_price,
		       (SELECT MIN(d.delivery_time_in_days) FROM offer_details d WHERE d.offer_id = o.id) AS min_delivery_time
		FROM offers o
		WHERE o.id = $1
	`

	var offer entity.OfferSummary
	err := r.db.QueryRow(ctx, query, id).Scan(
		&offer.ID,
		&offer.CreatorID,
		&offer.Title,
		&offer.Image,
		&offer.Description,
		&offer.CreatedAt,
		&offer.UpdatedAt,
		&offer.MinPrice,
		&offer.MinDeliveryTime,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find offer by ID",
			zap.Error(err),
			zap.String("offer_id", id.String()),
		)
		return nil, fmt.Errorf("find offer by ID %s: %w", id.String(), err)
	}

	return &offer, nil
}

// buildFilterClauses appends the shared WHERE conditions and returns the args
func buildOfferFilterClauses(qb *strings.Builder, filter OfferFilter, args []interface{}) []interface{} {
	argCount := len(args) + 1

	if filter.CreatorID != nil {
		qb.WriteString(fmt.Sprintf(" AND o.creator_id = $%d", argCount))
		args = append(args, *filter.CreatorID)
		argCount++
	}

	if filter.MinPrice != nil {
		qb.WriteString(fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM offer_details d WHERE d.offer_id = o.id AND d.price >= $%d)", argCount))
		args = append(args, *filter.MinPrice)
		argCount++
	}

	if filter.MaxDeliveryTime != nil {
		qb.WriteString(fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM offer_details d WHERE d.offer_id = o.id AND d.delivery_time_in_days <= $%d)", argCount))
		args = append(args, *filter.MaxDeliveryTime)
		argCount++
	}

	if filter.Search != "" {
		qb.WriteString(fmt.Sprintf(" AND (o.title ILIKE $%d OR o.description ILIKE $%d)", argCount, argCount))
		args = append(args, "%"+filter.Search+"%")
	}

	return args
}

func (r *offerRepository) FindAll(ctx context.Context, filter OfferFilter) ([]*entity.OfferSummary, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT o.id, o.creator_id, o.title, o.image, o.description,
		       o.created_at, o.updated_at,
		       (SELECT MIN(d.price) FROM offer_details d WHERE d.offer_id = o.id) AS min_price,
		       (SELECT MIN(d.delivery_time_in_days) FROM offer_details d WHERE d.offer_id = o.id) AS min_delivery_time
		FROM offers o
		WHERE 1=1
	`)

	args := []interface{}{}
	args = buildOfferFilterClauses(&queryBuilder, filter, args)

	switch filter.Ordering {
	case "updated_at":
		queryBuilder.WriteString(" ORDER BY o.updated_at ASC")
	case "-updated_at":
		queryBuilder.WriteString(" ORDER BY o.updated_at DESC")
	case "min_price":
		queryBuilder.WriteString(" ORDER BY min_price ASC")
	case "-min_price":
		queryBuilder.WriteString(" ORDER BY min_price DESC")
	default:
		queryBuilder.WriteString(" ORDER BY o.created_at DESC")
	}

	argCount := len(args) + 1
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find all offers",
			zap.Error(err),
			zap.Int("limit", filter.Limit),
			zap.Int("offset", filter.Offset),
		)
		return nil, fmt.Errorf("find all offers: %w", err)
	}
	defer rows.Close()

	var offers []*entity.OfferSummary
	for rows.Next() {
		var offer entity.OfferSummary
		err := rows.Scan(
			&offer.ID,
			&offer.CreatorID,
			&offer.Title,
			&offer.Image,
			&offer.Description,
			&offer.CreatedAt,
			&offer.UpdatedAt,
			&offer.MinPrice,
			&offer.MinDeliveryTime,
		)
		if err != nil {
			r.log.Error("Failed to scan offer row", zap.Error(err))
			return nil, fmt.Errorf("scan offer row: %w", err)
		}
		offers = append(offers, &offer)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate offer rows: %w", err)
	}

	return offers, nil
}

func (r *offerRepository) CountAll(ctx context.Context, filter OfferFilter) (int64, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT COUNT(*) FROM offers o WHERE 1=1`)

	args := []interface{}{}
	args = buildOfferFilterClauses(&queryBuilder, filter, args)

	var count int64
	err := r.db.QueryRow(ctx, queryBuilder.String(), args...).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count offers", zap.Error(err))
		return 0, fmt.Errorf("count offers: %w", err)
	}

	return count, nil
}

func (r *offerRepository) Update(ctx context.Context, offer *entity.Offer) error {
	query := `
		UPDATE offers
		SET title = $2, image = $3, description = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		offer.ID,
		offer.Title,
		offer.Image,
		offer.Description,
		offer.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update offer",
			zap.Error(err),
			zap.String("offer_id", offer.ID.String()),
		)
		return fmt.Errorf("update offer %s: %w", offer.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("offer %s not found", offer.ID.String())
	}

	return nil
}

func (r *offerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM offers WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete offer",
			zap.Error(err),
			zap.String("offer_id", id.String()),
		)
		return fmt.Errorf("delete offer %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("offer %s not found", id.String())
	}

	r.log.Info("Offer deleted", zap.String("offer_id", id.String()))
	return nil
}

func (r *offerRepository) CountTotal(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM offers`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count total offers", zap.Error(err))
		return 0, fmt.Errorf("count total offers: %w", err)
	}

	return count, nil
}
