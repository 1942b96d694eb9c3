package wire

import (
	"freelance-marketplace/internal/adaptor"
	"freelance-marketplace/internal/data/repository"
	"freelance-marketplace/pkg/middleware"
	"freelance-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProfile(
	r chi.Router,
	profileHandler *adaptor.ProfileHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// GET /api/profile/{pk}/ - Retrieve any user's profile
		r.Get("/api/profile/{pk}/", profileHandler.GetProfile)

		// PATCH /api/profile/{pk}/ - Edit own profile
		r.Patch("/api/profile/{pk}/", profileHandler.UpdateProfile)

		// GET /api/profiles/business/ - List all business profiles
		r.Get("/api/profiles/business/", profileHandler.ListBusinessProfiles)

		// GET /api/profiles/customer/ - List all customer profiles
		r.Get("/api/profiles/customer/", profileHandler.ListCustomerProfiles)
	})
}
