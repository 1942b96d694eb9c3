package usecase

import (
	"context"
	"fmt"
	"time"

	"freelance-marketplace/internal/data/entity"
	"freelance-marketplace/internal/data/repository"
	"freelance-marketplace/internal/dto/request"
	"freelance-marketplace/internal/dto/response"
	"freelance-marketplace/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewListQuery carries the parsed query string of GET /api/reviews/
type ReviewListQuery struct {
	BusinessUserID string
	ReviewerID     string
	Ordering       string
}

type ReviewService interface {
	ListReviews(ctx context.Context, query *ReviewListQuery) ([]response.ReviewResponse, error)
	CreateReview(ctx context.Context, callerID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, reviewID string, callerID uuid.UUID, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) ListReviews(ctx context.Context, query *ReviewListQuery) ([]response.ReviewResponse, error) {
	filter := repository.ReviewFilter{Ordering: query.Ordering}

	if query.BusinessUserID != "" {
		businessUUID, err := uuid.Parse(query.BusinessUserID)
		if err != nil {
			return nil, fmt.Errorf("invalid business user ID format %s: %w", query.BusinessUserID, err)
		}
		filter.BusinessUserID = &businessUUID
	}

	if query.ReviewerID != "" {
		reviewerUUID, err := uuid.Parse(query.ReviewerID)
		if err != nil {
			return nil, fmt.Errorf("invalid reviewer ID format %s: %w", query.ReviewerID, err)
		}
		filter.ReviewerID = &reviewerUUID
	}

	reviews, err := s.repo.Review.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list reviews", zap.Error(err))
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	responses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = response.ReviewToResponse(review)
	}

	return responses, nil
}

func (s *reviewService) CreateReview(ctx context.Context, callerID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Only customers may review
	caller, err := s.repo.User.FindByID(ctx, callerID)
	if err != nil {
		s.log.Error("Failed to load caller", zap.Error(err), zap.String("user_id", callerID.String()))
		return nil, fmt.Errorf("create review: %w", err)
	}
	if caller == nil {
		return nil, fmt.Errorf("user %s not found", callerID.String())
	}
	if caller.Role != entity.RoleCustomer {
		return nil, fmt.Errorf("forbidden: only customers may write reviews")
	}

	// 3. Target must be a business user
	businessUUID, err := uuid.Parse(req.BusinessUserID)
	if err != nil {
		return nil, fmt.Errorf("invalid business user ID format %s: %w", req.BusinessUserID, err)
	}

	business, err := s.repo.User.FindByID(ctx, businessUUID)
	if err != nil {
		s.log.Error("Failed to load business user", zap.Error(err), zap.String("user_id", req.BusinessUserID))
		return nil, fmt.Errorf("create review: %w", err)
	}
	if business == nil || business.Role != entity.RoleBusiness {
		return nil, fmt.Errorf("business user %s not found", req.BusinessUserID)
	}

	// 4. One review per reviewer/business pair
	existing, err := s.repo.Review.FindByReviewerAndBusiness(ctx, callerID, businessUUID)
	if err != nil {
		s.log.Error("Failed to check existing review", zap.Error(err))
		return nil, fmt.Errorf("create review: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("already reviewed this business")
	}

	now := time.Now()
	review := &entity.Review{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ReviewerID:     callerID,
		BusinessUserID: businessUUID,
		Rating:         req.Rating,
		Description:    req.Description,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("reviewer_id", callerID.String()),
			zap.String("business_user_id", req.BusinessUserID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("reviewer_id", callerID.String()),
		zap.String("business_user_id", req.BusinessUserID),
		zap.Int("rating", req.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewID string, callerID uuid.UUID, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("invalid review ID format %s: %w", reviewID, err)
	}

	review, err := s.repo.Review.FindByID(ctx, reviewUUID)
	if err != nil {
		s.log.Error("Failed to load review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("get review: %w", err)
	}
	if review == nil {
		return nil, fmt.Errorf("review %s not found", reviewID)
	}

	// 2. Only the author may edit
	if review.ReviewerID != callerID {
		return nil, fmt.Errorf("forbidden: only the reviewer may edit this review")
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Description != nil {
		review.Description = *req.Description
	}
	review.UpdatedAt = time.Now()

	if err := s.repo.Review.Update(ctx, review); err != nil {
		s.log.Error("Failed to update review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("update review: %w", err)
	}

	s.log.Info("Review updated",
		zap.String("review_id", reviewID),
		zap.String("reviewer_id", callerID.String()),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}
