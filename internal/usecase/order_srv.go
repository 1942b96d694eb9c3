package usecase

import (
	"context"
	"fmt"
	"time"

	"freelance-marketplace/internal/data/entity"
	"freelance-marketplace/internal/data/repository"
	"freelance-marketplace/internal/dto/request"
	"freelance-marketplace/internal/dto/response"
	"freelance-marketplace/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	ListOrders(ctx context.Context, callerID uuid.UUID) ([]response.OrderResponse, error)
	CreateOrder(ctx context.Context, callerID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	UpdateOrderStatus(ctx context.Context, orderID string, callerID uuid.UUID, req *request.UpdateOrderRequest) (*response.OrderResponse, error)
	GetOrderCount(ctx context.Context, businessUserID string) (*response.OrderCountResponse, error)
	GetCompletedOrderCount(ctx context.Context, businessUserID string) (*response.CompletedOrderCountResponse, error)
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log.With(zap.String("service", "order")),
	}
}

func (s *orderService) ListOrders(ctx context.Context, callerID uuid.UUID) ([]response.OrderResponse, error) {
	orders, err := s.repo.Order.FindAllForUser(ctx, callerID)
	if err != nil {
		s.log.Error("Failed to list orders", zap.Error(err), zap.String("user_id", callerID.String()))
		return nil, fmt.Errorf("list orders: %w", err)
	}

	responses := make([]response.OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = response.OrderToResponse(order)
	}

	return responses, nil
}

func (s *orderService) CreateOrder(ctx context.Context, callerID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Only customers may place orders
	caller, err := s.repo.User.FindByID(ctx, callerID)
	if err != nil {
		s.log.Error("Failed to load caller", zap.Error(err), zap.String("user_id", callerID.String()))
		return nil, fmt.Errorf("create order: %w", err)
	}
	if caller == nil {
		return nil, fmt.Errorf("user %s not found", callerID.String())
	}
	if caller.Role != entity.RoleCustomer {
		return nil, fmt.Errorf("forbidden: only customers may place orders")
	}

	// 3. Resolve the purchased tier
	detailUUID, err := uuid.Parse(req.OfferDetailID)
	if err != nil {
		return nil, fmt.Errorf("invalid offer detail ID format %s: %w", req.OfferDetailID, err)
	}

	detail, err := s.repo.OfferDetail.FindByID(ctx, detailUUID)
	if err != nil {
		s.log.Error("Failed to load offer detail", zap.Error(err), zap.String("detail_id", req.OfferDetailID))
		return nil, fmt.Errorf("create order: %w", err)
	}
	if detail == nil {
		return nil, fmt.Errorf("offer detail %s not found", req.OfferDetailID)
	}

	// 4. The offer creator becomes the business party
	offer, err := s.repo.Offer.FindByID(ctx, detail.OfferID)
	if err != nil {
		s.log.Error("Failed to load offer", zap.Error(err), zap.String("offer_id", detail.OfferID.String()))
		return nil, fmt.Errorf("create order: %w", err)
	}
	if offer == nil {
		return nil, fmt.Errorf("offer %s not found", detail.OfferID.String())
	}

	// 5. Snapshot tier fields so later edits never change the purchase
	now := time.Now()
	order := &entity.Order{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CustomerID:         callerID,
		BusinessID:         offer.CreatorID,
		OfferDetailID:      detail.ID,
		Title:              detail.Title,
		Revisions:          detail.Revisions,
		DeliveryTimeInDays: detail.DeliveryTimeInDays,
		Price:              detail.Price,
		Features:           detail.Features,
		OfferType:          detail.OfferType,
		Status:             entity.OrderStatusInProgress,
	}

	if err := s.repo.Order.Create(ctx, order); err != nil {
		s.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("customer_id", callerID.String()),
			zap.String("detail_id", detail.ID.String()),
		)
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("customer_id", callerID.String()),
		zap.String("business_id", offer.CreatorID.String()),
		zap.Float64("price", order.Price),
	)

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID string, callerID uuid.UUID, req *request.UpdateOrderRequest) (*response.OrderResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	orderUUID, err := uuid.Parse(orderID)
	if err != nil {
		return nil, fmt.Errorf("invalid order ID format %s: %w", orderID, err)
	}

	order, err := s.repo.Order.FindByID(ctx, orderUUID)
	if err != nil {
		s.log.Error("Failed to load order", zap.Error(err), zap.String("order_id", orderID))
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("order %s not found", orderID)
	}

	// 2. Only the business party may move an order forward
	if order.BusinessID != callerID {
		return nil, fmt.Errorf("forbidden: only the business party may update the order status")
	}

	// 3. Permitted moves only go forward from in_progress
	next := entity.OrderStatus(req.Status)
	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("validation failed: cannot change status from %s to %s", order.Status, next)
	}

	now := time.Now()
	if err := s.repo.Order.UpdateStatus(ctx, orderUUID, next, now); err != nil {
		s.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", orderID),
			zap.String("status", req.Status),
		)
		return nil, fmt.Errorf("update order status: %w", err)
	}

	order.Status = next
	order.UpdatedAt = now

	s.log.Info("Order status updated",
		zap.String("order_id", orderID),
		zap.String("status", req.Status),
	)

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) GetOrderCount(ctx context.Context, businessUserID string) (*response.OrderCountResponse, error) {
	businessUUID, err := s.resolveBusinessUser(ctx, businessUserID)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.Order.CountByBusinessAndStatus(ctx, businessUUID, entity.OrderStatusInProgress)
	if err != nil {
		s.log.Error("Failed to count in-progress orders", zap.Error(err), zap.String("business_id", businessUserID))
		return nil, fmt.Errorf("count orders: %w", err)
	}

	return &response.OrderCountResponse{OrderCount: count}, nil
}

func (s *orderService) GetCompletedOrderCount(ctx context.Context, businessUserID string) (*response.CompletedOrderCountResponse, error) {
	businessUUID, err := s.resolveBusinessUser(ctx, businessUserID)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.Order.CountByBusinessAndStatus(ctx, businessUUID, entity.OrderStatusCompleted)
	if err != nil {
		s.log.Error("Failed to count completed orders", zap.Error(err), zap.String("business_id", businessUserID))
		return nil, fmt.Errorf("count orders: %w", err)
	}

	return &response.CompletedOrderCountResponse{CompletedOrderCount: count}, nil
}

// ==================== HELPER METHODS ====================

// resolveBusinessUser parses the path ID and confirms a business user exists
func (s *orderService) resolveBusinessUser(ctx context.Context, businessUserID string) (uuid.UUID, error) {
	businessUUID, err := uuid.Parse(businessUserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user ID format %s: %w", businessUserID, err)
	}

	user, err := s.repo.User.FindByID(ctx, businessUUID)
	if err != nil {
		s.log.Error("Failed to load business user", zap.Error(err), zap.String("user_id", businessUserID))
		return uuid.Nil, fmt.Errorf("get business user: %w", err)
	}
	if user == nil || user.Role != entity.RoleBusiness {
		return uuid.Nil, fmt.Errorf("business user %s not found", businessUserID)
	}

	return businessUUID, nil
}
