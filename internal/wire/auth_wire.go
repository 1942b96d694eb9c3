package wire

import (
	"freelance-marketplace/internal/adaptor"
	"freelance-marketplace/internal/data/repository"
	"freelance-marketplace/pkg/middleware"
	"freelance-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/registration/ - Create account and return token
	r.Post("/api/registration/", authHandler.Register)

	// POST /api/login/ - Exchange credentials for token
	r.Post("/api/login/", authHandler.Login)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/logout/ - Revoke the current session token
		r.Post("/api/logout/", authHandler.Logout)
	})
}
