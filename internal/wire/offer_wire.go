package wire

import (
	"freelance-marketplace/internal/adaptor"
	"freelance-marketplace/internal/data/repository"
	"freelance-marketplace/pkg/middleware"
	"freelance-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOffer(
	r chi.Router,
	offerHandler *adaptor.OfferHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/offers/ - List offers with filters and pagination
	r.Get("/api/offers/", offerHandler.ListOffers)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/offers/ - Create offer with three tiers (business only)
		r.Post("/api/offers/", offerHandler.CreateOffer)

		// GET /api/offers/{id}/ - Retrieve a single offer
		r.Get("/api/offers/{id}/", offerHandler.GetOffer)

		// PATCH /api/offers/{id}/ - Edit own offer and its tiers
		r.Patch("/api/offers/{id}/", offerHandler.UpdateOffer)

		// DELETE /api/offers/{id}/ - Delete own offer
		r.Delete("/api/offers/{id}/", offerHandler.DeleteOffer)

		// GET /api/offerdetails/{id}/ - Retrieve a single tier
		r.Get("/api/offerdetails/{id}/", offerHandler.GetOfferDetail)
	})
}
