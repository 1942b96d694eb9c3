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

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// ListOrders handles GET /api/orders/ (protected)
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	orders, err := h.service.ListOrders(r.Context(), callerID)
	if err != nil {
		h.handleServiceError(w, err, "list orders")
		return
	}

	utils.ResponseSuccess(w, "success", orders)
}

// CreateOrder handles POST /api/orders/ (protected, customer only)
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	order, err := h.service.CreateOrder(r.Context(), callerID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create order")
		return
	}

	utils.ResponseCreated(w, "success", order)
}

// UpdateOrderStatus handles PATCH /api/orders/{id}/ (protected, business party only)
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		utils.ResponseBadRequest(w, "Order ID is required", nil)
		return
	}

	var req request.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	order, err := h.service.UpdateOrderStatus(r.Context(), orderID, callerID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update order status")
		return
	}

	utils.ResponseSuccess(w, "success", order)
}

// GetOrderCount handles GET /api/order-count/{business_user_id}/ (protected)
func (h *OrderHandler) GetOrderCount(w http.ResponseWriter, r *http.Request) {
	businessUserID := chi.URLParam(r, "business_user_id")
	if businessUserID == "" {
		utils.ResponseBadRequest(w, "Business user ID is required", nil)
		return
	}

	count, err := h.service.GetOrderCount(r.Context(), businessUserID)
	if err != nil {
		h.handleServiceError(w, err, "get order count")
		return
	}

	utils.ResponseSuccess(w, "success", count)
}

// GetCompletedOrderCount handles GET /api/completed-order-count/{business_user_id}/ (protected)
func (h *OrderHandler) GetCompletedOrderCount(w http.ResponseWriter, r *http.Request) {
	businessUserID := chi.URLParam(r, "business_user_id")
	if businessUserID == "" {
		utils.ResponseBadRequest(w, "Business user ID is required", nil)
		return
	}

	count, err := h.service.GetCompletedOrderCount(r.Context(), businessUserID)
	if err != nil {
		h.handleServiceError(w, err, "get completed order count")
		return
	}

	utils.ResponseSuccess(w, "success", count)
}

// handleServiceError handles errors for order operations
func (h *OrderHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "cannot"):
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
