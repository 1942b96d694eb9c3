package adaptor

import (
	"net/http"

	"freelance-marketplace/internal/usecase"
	"freelance-marketplace/pkg/utils"

	"go.uber.org/zap"
)

type StatsHandler struct {
	service usecase.StatsService
	log     *zap.Logger
}

func NewStatsHandler(service usecase.StatsService, log *zap.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		log:     log.With(zap.String("handler", "stats")),
	}
}

// GetBaseInfo handles GET /api/base-info/ (public)
func (h *StatsHandler) GetBaseInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.service.GetBaseInfo(r.Context())
	if err != nil {
		h.log.Error("Failed to get base info", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", info)
}
