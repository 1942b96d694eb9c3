package wire

import (
	"freelance-marketplace/internal/adaptor"
	"freelance-marketplace/internal/data/repository"
	"freelance-marketplace/pkg/middleware"
	"freelance-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// GET /api/reviews/ - List reviews with filters and ordering
		r.Get("/api/reviews/", reviewHandler.ListReviews)

		// POST /api/reviews/ - Write a review (customer only, one per business)
		r.Post("/api/reviews/", reviewHandler.CreateReview)

		// PATCH /api/reviews/{id}/ - Edit own review
		r.Patch("/api/reviews/{id}/", reviewHandler.UpdateReview)
	})
}
