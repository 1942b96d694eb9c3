package wire

import (
	"freelance-marketplace/internal/adaptor"
	"freelance-marketplace/internal/data/repository"
	"freelance-marketplace/pkg/middleware"
	"freelance-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// GET /api/orders/ - List orders where caller is a party
		r.Get("/api/orders/", orderHandler.ListOrders)

		// POST /api/orders/ - Place an order for a tier (customer only)
		r.Post("/api/orders/", orderHandler.CreateOrder)

		// PATCH /api/orders/{id}/ - Update order status (business party only)
		r.Patch("/api/orders/{id}/", orderHandler.UpdateOrderStatus)

		// GET /api/order-count/{business_user_id}/ - Count in-progress orders
		r.Get("/api/order-count/{business_user_id}/", orderHandler.GetOrderCount)

		// GET /api/completed-order-count/{business_user_id}/ - Count completed orders
		r.Get("/api/completed-order-count/{business_user_id}/", orderHandler.GetCompletedOrderCount)
	})
}
