package adaptor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"freelance-marketplace/internal/dto/request"
	"freelance-marketplace/internal/dto/response"
	"freelance-marketplace/internal/usecase"
	"freelance-marketplace/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubReviewService struct {
	createErr error
}

func (s *stubReviewService) ListReviews(ctx context.Context, query *usecase.ReviewListQuery) ([]response.ReviewResponse, error) {
	return []response.ReviewResponse{}, nil
}

func (s *stubReviewService) CreateReview(ctx context.Context, callerID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &response.ReviewResponse{ID: uuid.New().String(), Rating: req.Rating}, nil
}

func (s *stubReviewService) UpdateReview(ctx context.Context, reviewID string, callerID uuid.UUID, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	return nil, fmt.Errorf("review %s not found", reviewID)
}

func authedRequest(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := utils.SetUserContext(r.Context(), uuid.New(), "customer")
	return r.WithContext(ctx)
}

func TestCreateReview_DuplicateReturnsConflict(t *testing.T) {
	handler := NewReviewHandler(&stubReviewService{
		createErr: fmt.Errorf("already reviewed this business"),
	}, zap.NewNop())

	body := fmt.Sprintf(`{"business_user":"%s","rating":5,"description":"Great"}`, uuid.New().String())
	r := authedRequest(http.MethodPost, "/api/reviews/", body)
	w := httptest.NewRecorder()

	handler.CreateReview(w, r)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already reviewed")
}

func TestCreateReview_Created(t *testing.T) {
	handler := NewReviewHandler(&stubReviewService{}, zap.NewNop())

	body := fmt.Sprintf(`{"business_user":"%s","rating":4}`, uuid.New().String())
	r := authedRequest(http.MethodPost, "/api/reviews/", body)
	w := httptest.NewRecorder()

	handler.CreateReview(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateReview_MissingAuthContext(t *testing.T) {
	handler := NewReviewHandler(&stubReviewService{}, zap.NewNop())

	r := httptest.NewRequest(http.MethodPost, "/api/reviews/", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	handler.CreateReview(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateReview_InvalidBody(t *testing.T) {
	handler := NewReviewHandler(&stubReviewService{}, zap.NewNop())

	r := authedRequest(http.MethodPost, "/api/reviews/", `{not json`)
	w := httptest.NewRecorder()

	handler.CreateReview(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
