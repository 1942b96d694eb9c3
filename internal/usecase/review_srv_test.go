package usecase

import (
	"context"
	"testing"
	"time"

	"freelance-marketplace/internal/data/entity"
	"freelance-marketplace/internal/data/repository"
	"freelance-marketplace/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateReview_Success(t *testing.T) {
	reviewerID := uuid.New()
	businessID := uuid.New()

	var created *entity.Review
	repo := &repository.Repository{
		User: &mockUserRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
				if id == reviewerID {
					return &entity.User{Base: entity.Base{ID: id}, Role: entity.RoleCustomer}, nil
				}
				return &entity.User{Base: entity.Base{ID: id}, Role: entity.RoleBusiness}, nil
			},
		},
		Review: &mockReviewRepo{
			FindByReviewerAndBusinessFn: func(ctx context.Context, reviewerID, businessUserID uuid.UUID) (*entity.Review, error) {
				return nil, nil
			},
			CreateFn: func(ctx context.Context, review *entity.Review) error {
				created = review
				return nil
			},
		},
	}

	svc := NewReviewService(repo, testLogger())

	resp, err := svc.CreateReview(context.Background(), reviewerID, &request.CreateReviewRequest{
		BusinessUserID: businessID.String(),
		Rating:         4,
		Description:    "Solid work, quick delivery",
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, reviewerID, created.ReviewerID)
	assert.Equal(t, businessID, created.BusinessUserID)
	assert.Equal(t, 4, resp.Rating)
}

func TestCreateReview_DuplicateRejected(t *testing.T) {
	reviewerID := uuid.New()
	businessID := uuid.New()

	repo := &repository.Repository{
		User: &mockUserRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
				if id == reviewerID {
					return &entity.User{Base: entity.Base{ID: id}, Role: entity.RoleCustomer}, nil
				}
				return &entity.User{Base: entity.Base{ID: id}, Role: entity.RoleBusiness}, nil
			},
		},
		Review: &mockReviewRepo{
			FindByReviewerAndBusinessFn: func(ctx context.Context, reviewerID, businessUserID uuid.UUID) (*entity.Review, error) {
				return &entity.Review{
					Base:   entity.Base{ID: uuid.New()},
					ReviewerID:     reviewerID,
					BusinessUserID: businessUserID,
					Rating:         5,
				}, nil
			},
		},
	}

	svc := NewReviewService(repo, testLogger())

	_, err := svc.CreateReview(context.Background(), reviewerID, &request.CreateReviewRequest{
		BusinessUserID: businessID.String(),
		Rating:         3,
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already reviewed")
}

func TestCreateReview_BusinessUserForbidden(t *testing.T) {
	repo := &repository.Repository{
		User: &mockUserRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
				return &entity.User{Base: entity.Base{ID: id}, Role: entity.RoleBusiness}, nil
			},
		},
	}

	svc := NewReviewService(repo, testLogger())

	_, err := svc.CreateReview(context.Background(), uuid.New(), &request.CreateReviewRequest{
		BusinessUserID: uuid.New().String(),
		Rating:         5,
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")
}

func TestCreateReview_TargetMustBeBusiness(t *testing.T) {
	reviewerID := uuid.New()
	customerID := uuid.New()

	repo := &repository.Repository{
		User: &mockUserRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
				return &entity.User{Base: entity.Base{ID: id}, Role: entity.RoleCustomer}, nil
			},
		},
	}

	svc := NewReviewService(repo, testLogger())

	_, err := svc.CreateReview(context.Background(), reviewerID, &request.CreateReviewRequest{
		BusinessUserID: customerID.String(),
		Rating:         5,
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestUpdateReview_OnlyReviewer(t *testing.T) {
	reviewID := uuid.New()
	reviewerID := uuid.New()

	repo := &repository.Repository{
		Review: &mockReviewRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
				return &entity.Review{
					Base: entity.Base{ID: reviewID},
					ReviewerID:   reviewerID,
					Rating:       3,
				}, nil
			},
		},
	}

	svc := NewReviewService(repo, testLogger())

	newRating := 5
	_, err := svc.UpdateReview(context.Background(), reviewID.String(), uuid.New(), &request.UpdateReviewRequest{
		Rating: &newRating,
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")
}

func TestUpdateReview_PartialPatch(t *testing.T) {
	reviewID := uuid.New()
	reviewerID := uuid.New()

	var updated *entity.Review
	repo := &repository.Repository{
		Review: &mockReviewRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
				return &entity.Review{
					Base: entity.Base{ID: reviewID, CreatedAt: time.Now()},
					ReviewerID:   reviewerID,
					Rating:       3,
					Description:  "Okay",
				}, nil
			},
			UpdateFn: func(ctx context.Context, review *entity.Review) error {
				updated = review
				return nil
			},
		},
	}

	svc := NewReviewService(repo, testLogger())

	newRating := 5
	resp, err := svc.UpdateReview(context.Background(), reviewID.String(), reviewerID, &request.UpdateReviewRequest{
		Rating: &newRating,
	})

	assert.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, "Okay", updated.Description)
	assert.Equal(t, 5, resp.Rating)
}
