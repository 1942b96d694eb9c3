package repository

import (
	"context"
	"testing"
	"time"

	"freelance-marketplace/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestReviewRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()

	repo := NewReviewRepository(mock, zap.NewNop())

	now := time.Now()
	review := &entity.Review{
		Base:   entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		ReviewerID:     uuid.New(),
		BusinessUserID: uuid.New(),
		Rating:         4,
		Description:    "Great communication",
	}

	mock.ExpectExec("INSERT INTO reviews").
		WithArgs(review.ID, review.ReviewerID, review.BusinessUserID,
			review.Rating, review.Description, review.CreatedAt, review.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), review)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Create_DuplicatePairConflict(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()

	repo := NewReviewRepository(mock, zap.NewNop())

	now := time.Now()
	review := &entity.Review{
		Base:           entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		ReviewerID:     uuid.New(),
		BusinessUserID: uuid.New(),
		Rating:         4,
		Description:    "Second attempt",
	}

	mock.ExpectExec("INSERT INTO reviews").
		WithArgs(review.ID, review.ReviewerID, review.BusinessUserID,
			review.Rating, review.Description, review.CreatedAt, review.UpdatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "reviews_reviewer_business_key"})

	err = repo.Create(context.Background(), review)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already reviewed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_FindByReviewerAndBusiness_NoRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()

	repo := NewReviewRepository(mock, zap.NewNop())

	reviewerID := uuid.New()
	businessID := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM reviews").
		WithArgs(reviewerID, businessID).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "reviewer_id", "business_user_id", "rating",
			"description", "created_at", "updated_at",
		}))

	review, err := repo.FindByReviewerAndBusiness(context.Background(), reviewerID, businessID)

	assert.NoError(t, err)
	assert.Nil(t, review)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_FindByReviewerAndBusiness_Found(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()

	repo := NewReviewRepository(mock, zap.NewNop())

	reviewID := uuid.New()
	reviewerID := uuid.New()
	businessID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM reviews").
		WithArgs(reviewerID, businessID).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "reviewer_id", "business_user_id", "rating",
			"description", "created_at", "updated_at",
		}).AddRow(reviewID, reviewerID, businessID, 5, "Excellent", now, now))

	review, err := repo.FindByReviewerAndBusiness(context.Background(), reviewerID, businessID)

	assert.NoError(t, err)
	assert.NotNil(t, review)
	assert.Equal(t, reviewID, review.ID)
	assert.Equal(t, 5, review.Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_FindAll_FiltersByBusiness(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()

	repo := NewReviewRepository(mock, zap.NewNop())

	businessID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM reviews").
		WithArgs(businessID).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "reviewer_id", "business_user_id", "rating",
			"description", "created_at", "updated_at",
		}).
			AddRow(uuid.New(), uuid.New(), businessID, 5, "A", now, now).
			AddRow(uuid.New(), uuid.New(), businessID, 3, "B", now, now))

	reviews, err := repo.FindAll(context.Background(), ReviewFilter{
		BusinessUserID: &businessID,
		Ordering:       "-rating",
	})

	assert.NoError(t, err)
	assert.Len(t, reviews, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_GetPlatformStats(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()

	repo := NewReviewRepository(mock, zap.NewNop())

	mock.ExpectQuery("SELECT (.+) FROM reviews").
		WillReturnRows(pgxmock.NewRows([]string{"avg_rating", "review_count"}).
			AddRow(4.25, int64(8)))

	avg, count, err := repo.GetPlatformStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 4.25, avg)
	assert.Equal(t, int64(8), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Update_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()

	repo := NewReviewRepository(mock, zap.NewNop())

	now := time.Now()
	review := &entity.Review{
		Base: entity.Base{ID: uuid.New(), UpdatedAt: now},
		Rating:       2,
		Description:  "Changed my mind",
	}

	mock.ExpectExec("UPDATE reviews").
		WithArgs(review.ID, review.Rating, review.Description, review.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.Update(context.Background(), review)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}
