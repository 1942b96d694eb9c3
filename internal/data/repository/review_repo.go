package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"freelance-marketplace/internal/data/entity"
	"freelance-marketplace/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ReviewFilter carries the query parameters of GET /api/reviews/
type ReviewFilter struct {
	BusinessUserID *uuid.UUID
	ReviewerID     *uuid.UUID
	Ordering       string // updated_at | -updated_at | rating | -rating
}

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindAll(ctx context.Context, filter ReviewFilter) ([]*entity.Review, error)
	FindByReviewerAndBusiness(ctx context.Context, reviewerID, businessUserID uuid.UUID) (*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error

	// Stats
	GetPlatformStats(ctx context.Context) (float64, int64, error) // avg rating, count
}

type reviewRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewReviewRepository(db database.Querier, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, reviewer_id, business_user_id, rating,
		                    description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.ReviewerID,
		review.BusinessUserID,
		review.Rating,
		review.Description,
		review.CreatedAt,
		review.UpdatedAt,
	)

	if err != nil {
		// The reviews table carries a unique index over (reviewer_id, business_user_id)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("already reviewed this business")
		}

		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("reviewer_id", review.ReviewerID.String()),
			zap.String("business_user_id", review.BusinessUserID.String()),
		)
		return fmt.Errorf("create review for business %s by reviewer %s: %w",
			review.BusinessUserID.String(), review.ReviewerID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	query := `
		SELECT id, reviewer_id, business_user_id, rating, description,
		       created_at, updated_at
		FROM reviews
		WHERE id = $1
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.ReviewerID,
		&review.BusinessUserID,
		&review.Rating,
		&review.Description,
		&review.CreatedAt,
		&review.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return &review, nil
}

func (r *reviewRepository) FindAll(ctx context.Context, filter ReviewFilter) ([]*entity.Review, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, reviewer_id, business_user_id, rating, description,
		       created_at, updated_at
		FROM reviews
		WHERE 1=1
	`)

	args := []interface{}{}
	argCount := 1

	if filter.BusinessUserID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND business_user_id = $%d", argCount))
		args = append(args, *filter.BusinessUserID)
		argCount++
	}

	if filter.ReviewerID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND reviewer_id = $%d", argCount))
		args = append(args, *filter.ReviewerID)
	}

	switch filter.Ordering {
	case "updated_at":
		queryBuilder.WriteString(" ORDER BY updated_at ASC")
	case "-updated_at":
		queryBuilder.WriteString(" ORDER BY updated_at DESC")
	case "rating":
		queryBuilder.WriteString(" ORDER BY rating ASC")
	case "-rating":
		queryBuilder.WriteString(" ORDER BY rating DESC")
	default:
		queryBuilder.WriteString(" ORDER BY created_at DESC")
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find all reviews", zap.Error(err))
		return nil, fmt.Errorf("find all reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.ReviewerID,
			&review.BusinessUserID,
			&review.Rating,
			&review.Description,
			&review.CreatedAt,
			&review.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) FindByReviewerAndBusiness(ctx context.Context, reviewerID, businessUserID uuid.UUID) (*entity.Review, error) {
	query := `
		SELECT id, reviewer_id, business_user_id, rating, description,
		       created_at, updated_at
		FROM reviews
		WHERE reviewer_id = $1 AND business_user_id = $2
		LIMIT 1
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, reviewerID, businessUserID).Scan(
		&review.ID,
		&review.ReviewerID,
		&review.BusinessUserID,
		&review.Rating,
		&review.Description,
		&review.CreatedAt,
		&review.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by reviewer and business",
			zap.Error(err),
			zap.String("reviewer_id", reviewerID.String()),
			zap.String("business_user_id", businessUserID.String()),
		)
		return nil, fmt.Errorf("find review by reviewer %s and business %s: %w",
			reviewerID.String(), businessUserID.String(), err)
	}

	return &review, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE reviews
		SET rating = $2, description = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		review.ID,
		review.Rating,
		review.Description,
		review.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", review.ID.String()),
		)
		return fmt.Errorf("update review %s: %w", review.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", review.ID.String())
	}

	return nil
}

func (r *reviewRepository) GetPlatformStats(ctx context.Context) (float64, int64, error) {
	query := `
		SELECT
			COALESCE(AVG(rating), 0) as avg_rating,
			COUNT(*) as review_count
		FROM reviews
	`

	var avgRating float64
	var reviewCount int64
	err := r.db.QueryRow(ctx, query).Scan(&avgRating, &reviewCount)
	if err != nil {
		r.log.Error("Failed to get platform review stats", zap.Error(err))
		return 0, 0, fmt.Errorf("get platform review stats: %w", err)
	}

	return avgRating, reviewCount, nil
}
