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

type OfferHandler struct {
	service usecase.OfferService
	config  *utils.Config
	log     *zap.Logger
}

func NewOfferHandler(service usecase.OfferService, config *utils.Config, log *zap.Logger) *OfferHandler {
	return &OfferHandler{
		service: service,
		config:  config,
		log:     log.With(zap.String("handler", "offer")),
	}
}

// ListOffers handles GET /api/offers/ (public)
func (h *OfferHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	listQuery := &request.OfferListQuery{
		CreatorID: query.Get("creator_id"),
		Search:    query.Get("search"),
		Ordering:  query.Get("ordering"),
		Page:      utils.ParseInt(query.Get("page"), 1),
		PageSize:  utils.ParseInt(query.Get("page_size"), h.config.Paging.OfferPageSize),
	}

	if listQuery.PageSize > h.config.Paging.MaxPageSize {
		listQuery.PageSize = h.config.Paging.MaxPageSize
	}

	if raw := query.Get("min_price"); raw != "" {
		minPrice, ok := utils.ParseFloat(raw)
		if !ok {
			utils.ResponseBadRequest(w, "Invalid min_price value", nil)
			return
		}
		listQuery.MinPrice = &minPrice
	}

	if raw := query.Get("max_delivery_time"); raw != "" {
		maxDelivery := utils.ParseInt(raw, -1)
		if maxDelivery < 0 {
			utils.ResponseBadRequest(w, "Invalid max_delivery_time value", nil)
			return
		}
		listQuery.MaxDeliveryTime = &maxDelivery
	}

	offers, err := h.service.ListOffers(r.Context(), listQuery)
	if err != nil {
		h.handleServiceError(w, err, "list offers")
		return
	}

	utils.ResponseSuccess(w, "success", offers)
}

// CreateOffer handles POST /api/offers/ (protected, business only)
func (h *OfferHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	offer, err := h.service.CreateOffer(r.Context(), callerID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create offer")
		return
	}

	utils.ResponseCreated(w, "success", offer)
}

// GetOffer handles GET /api/offers/{id}/ (protected)
func (h *OfferHandler) GetOffer(w http.ResponseWriter, r *http.Request) {
	offerID := chi.URLParam(r, "id")
	if offerID == "" {
		utils.ResponseBadRequest(w, "Offer ID is required", nil)
		return
	}

	offer, err := h.service.GetOffer(r.Context(), offerID)
	if err != nil {
		h.handleServiceError(w, err, "get offer")
		return
	}

	utils.ResponseSuccess(w, "success", offer)
}

// UpdateOffer handles PATCH /api/offers/{id}/ (protected, creator only)
func (h *OfferHandler) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	offerID := chi.URLParam(r, "id")
	if offerID == "" {
		utils.ResponseBadRequest(w, "Offer ID is required", nil)
		return
	}

	var req request.UpdateOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	offer, err := h.service.UpdateOffer(r.Context(), offerID, callerID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update offer")
		return
	}

	utils.ResponseSuccess(w, "success", offer)
}

// DeleteOffer handles DELETE /api/offers/{id}/ (protected, creator only)
func (h *OfferHandler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	offerID := chi.URLParam(r, "id")
	if offerID == "" {
		utils.ResponseBadRequest(w, "Offer ID is required", nil)
		return
	}

	if err := h.service.DeleteOffer(r.Context(), offerID, callerID); err != nil {
		h.handleServiceError(w, err, "delete offer")
		return
	}

	utils.ResponseNoContent(w)
}

// GetOfferDetail handles GET /api/offerdetails/{id}/ (protected)
func (h *OfferHandler) GetOfferDetail(w http.ResponseWriter, r *http.Request) {
	detailID := chi.URLParam(r, "id")
	if detailID == "" {
		utils.ResponseBadRequest(w, "Offer detail ID is required", nil)
		return
	}

	detail, err := h.service.GetOfferDetail(r.Context(), detailID)
	if err != nil {
		h.handleServiceError(w, err, "get offer detail")
		return
	}

	utils.ResponseSuccess(w, "success", detail)
}

// handleServiceError handles errors for offer operations
func (h *OfferHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
