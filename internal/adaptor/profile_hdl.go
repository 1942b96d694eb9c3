package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"freelance-marketplace/internal/dto/request"
	"freelance-marketplace/internal/usecase"
	"freelance-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	service usecase.ProfileService
	log     *zap.Logger
}

func NewProfileHandler(service usecase.ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		log:     log.With(zap.String("handler", "profile")),
	}
}

// GetProfile handles GET /api/profile/{pk}/ (protected)
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "pk")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// UpdateProfile handles PATCH /api/profile/{pk}/ (protected, owner only)
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	userID := chi.URLParam(r, "pk")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	var req request.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), userID, callerID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// ListBusinessProfiles handles GET /api/profiles/business/ (protected)
func (h *ProfileHandler) ListBusinessProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.service.ListBusinessProfiles(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list business profiles")
		return
	}

	utils.ResponseSuccess(w, "success", profiles)
}

// ListCustomerProfiles handles GET /api/profiles/customer/ (protected)
func (h *ProfileHandler) ListCustomerProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.service.ListCustomerProfiles(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list customer profiles")
		return
	}

	utils.ResponseSuccess(w, "success", profiles)
}

// handleServiceError handles errors for profile operations
func (h *ProfileHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "forbidden"):
		h.log.Warn(operation+" failed - forbidden",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
