package wire

import (
	"freelance-marketplace/internal/adaptor"
	"freelance-marketplace/internal/data/repository"
	"freelance-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireStats(
	r chi.Router,
	statsHandler *adaptor.StatsHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/base-info/ - Platform-wide aggregate numbers
	r.Get("/api/base-info/", statsHandler.GetBaseInfo)
}
