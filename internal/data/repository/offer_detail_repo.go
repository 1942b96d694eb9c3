package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"freelance-marketplace/internal/data/entity"
	"freelance-marketplace/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OfferDetailRepository interface {
	Create(ctx context.Context, detail *entity.OfferDetail) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.OfferDetail, error)
	FindByOfferID(ctx context.Context, offerID uuid.UUID) ([]*entity.OfferDetail, error)
	FindByOfferAndType(ctx context.Context, offerID uuid.UUID, offerType entity.OfferType) (*entity.OfferDetail, error)
	Update(ctx context.Context, detail *entity.OfferDetail) error
	DeleteByOfferID(ctx context.Context, offerID uuid.UUID) error
}

type offerDetailRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewOfferDetailRepository(db database.Querier, log *zap.Logger) OfferDetailRepository {
	return &offerDetailRepository{
		db:  db,
		log: log.With(zap.String("repository", "offer_detail")),
	}
}

// features are stored as jsonb, encoded explicitly so ordering is preserved
func encodeFeatures(features []string) ([]byte, error) {
	if features == nil {
		features = []string{}
	}
	return json.Marshal(features)
}

func decodeFeatures(raw []byte, target *[]string) error {
	if len(raw) == 0 {
		*target = []string{}
		return nil
	}
	return json.Unmarshal(raw, target)
}

func (r *offerDetailRepository) Create(ctx context.Context, detail *entity.OfferDetail) error {
	features, err := encodeFeatures(detail.Features)
	if err != nil {
		return fmt.Errorf("encode features: %w", err)
	}

	query := `
		INSERT INTO offer_details (id, offer_id, title, revisions,
		                          delivery_time_in_days, price, features,
		                          offer_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = r.db.Exec(ctx, query,
		detail.ID,
		detail.OfferID,
		detail.Title,
		detail.Revisions,
		detail.DeliveryTimeInDays,
		detail.Price,
		features,
		detail.OfferType,
		detail.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create offer detail",
			zap.Error(err),
			zap.String("offer_id", detail.OfferID.String()),
			zap.String("offer_type", string(detail.OfferType)),
		)
		return fmt.Errorf("create offer detail %s for offer %s: %w",
			detail.OfferType, detail.OfferID.String(), err)
	}

	return nil
}

func (r *offerDetailRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.OfferDetail, error) {
	query := `
		SELECT id, offer_id, title, revisions, delivery_time_in_days,
		       price, features, offer_type, created_at
		FROM offer_details
		WHERE id = $1
	`

	var detail entity.OfferDetail
	var rawFeatures []byte
	err := r.db.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.OfferID,
		&detail.Title,
		&detail.Revisions,
		&detail.DeliveryTimeInDays,
		&detail.Price,
		&rawFeatures,
		&detail.OfferType,
		&detail.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find offer detail by ID",
			zap.Error(err),
			zap.String("detail_id", id.String()),
		)
		return nil, fmt.Errorf("find offer detail by ID %s: %w", id.String(), err)
	}

	if err := decodeFeatures(rawFeatures, &detail.Features); err != nil {
		return nil, fmt.Errorf("decode features for detail %s: %w", id.String(), err)
	}

	return &detail, nil
}

func (r *offerDetailRepository) FindByOfferID(ctx context.Context, offerID uuid.UUID) ([]*entity.OfferDetail, error) {
	// Tiers come back in basic/standard/premium order
	query := `
		SELECT id, offer_id, title, revisions, delivery_time_in_days,
		       price, features, offer_type, created_at
		FROM offer_details
		WHERE offer_id = $1
		ORDER BY CASE offer_type
			WHEN 'basic' THEN 0
			WHEN 'standard' THEN 1
			ELSE 2
		END
	`

	rows, err := r.db.Query(ctx, query, offerID)
	if err != nil {
		r.log.Error("Failed to find offer details by offer ID",
			zap.Error(err),
			zap.String("offer_id", offerID.String()),
		)
		return nil, fmt.Errorf("find offer details for offer %s: %w", offerID.String(), err)
	}
	defer rows.Close()

	var details []*entity.OfferDetail
	for rows.Next() {
		var detail entity.OfferDetail
		var rawFeatures []byte
		err := rows.Scan(
			&detail.ID,
			&detail.OfferID,
			&detail.Title,
			&detail.Revisions,
			&detail.DeliveryTimeInDays,
			&detail.Price,
			&rawFeatures,
			&detail.OfferType,
			&detail.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan offer detail row", zap.Error(err))
			return nil, fmt.Errorf("scan offer detail row: %w", err)
		}
		if err := decodeFeatures(rawFeatures, &detail.Features); err != nil {
			return nil, fmt.Errorf("decode features: %w", err)
		}
		details = append(details, &detail)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate offer detail rows: %w", err)
	}

	return details, nil
}

func (r *offerDetailRepository) FindByOfferAndType(ctx context.Context, offerID uuid.UUID, offerType entity.OfferType) (*entity.OfferDetail, error) {
	query := `
		SELECT id, offer_id, title, revisions, delivery_time_in_days,
		       price, features, offer_type, created_at
		FROM offer_details
		WHERE offer_id = $1 AND offer_type = $2
		LIMIT 1
	`

	var detail entity.OfferDetail
	var rawFeatures []byte
	err := r.db.QueryRow(ctx, query, offerID, offerType).Scan(
		&detail.ID,
		&detail.OfferID,
		&detail.Title,
		&detail.Revisions,
		&detail.DeliveryTimeInDays,
		&detail.Price,
		&rawFeatures,
		&detail.OfferType,
		&detail.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find offer detail by offer and type",
			zap.Error(err),
			zap.String("offer_id", offerID.String()),
			zap.String("offer_type", string(offerType)),
		)
		return nil, fmt.Errorf("find offer detail %s for offer %s: %w",
			offerType, offerID.String(), err)
	}

	if err := decodeFeatures(rawFeatures, &detail.Features); err != nil {
		return nil, fmt.Errorf("decode features: %w", err)
	}

	return &detail, nil
}

func (r *offerDetailRepository) Update(ctx context.Context, detail *entity.OfferDetail) error {
	features, err := encodeFeatures(detail.Features)
	if err != nil {
		return fmt.Errorf("encode features: %w", err)
	}

	query := `
		UPDATE offer_details
		SET title = $2, revisions = $3, delivery_time_in_days = $4,
		    price = $5, features = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		detail.ID,
		detail.Title,
		detail.Revisions,
		detail.DeliveryTimeInDays,
		detail.Price,
		features,
	)

	if err != nil {
		r.log.Error("Failed to update offer detail",
			zap.Error(err),
			zap.String("detail_id", detail.ID.String()),
		)
		return fmt.Errorf("update offer detail %s: %w", detail.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("offer detail %s not found", detail.ID.String())
	}

	return nil
}

func (r *offerDetailRepository) DeleteByOfferID(ctx context.Context, offerID uuid.UUID) error {
	query := `DELETE FROM offer_details WHERE offer_id = $1`

	_, err := r.db.Exec(ctx, query, offerID)
	if err != nil {
		r.log.Error("Failed to delete offer details",
			zap.Error(err),
			zap.String("offer_id", offerID.String()),
		)
		return fmt.Errorf("delete offer details for offer %s: %w", offerID.String(), err)
	}

	return nil
}
