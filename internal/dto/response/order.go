package response

import (
	"time"

	"freelance-marketplace/internal/data/entity"
)

type OrderResponse struct {
	ID                 string    `json:"id"`
	CustomerUser       string    `json:"customer_user"`
	BusinessUser       string    `json:"business_user"`
	Title              string    `json:"title"`
	Revisions          int       `json:"revisions"`
	DeliveryTimeInDays int       `json:"delivery_time_in_days"`
	Price              float64   `json:"price"`
	Features           []string  `json:"features"`
	OfferType          string    `json:"offer_type"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type OrderCountResponse struct {
	OrderCount int64 `json:"order_count"`
}

type CompletedOrderCountResponse struct {
	CompletedOrderCount int64 `json:"completed_order_count"`
}

// Helper converter
func OrderToResponse(order *entity.Order) OrderResponse {
	features := order.Features
	if features == nil {
		features = []string{}
	}

	return OrderResponse{
		ID:                 order.ID.String(),
		CustomerUser:       order.CustomerID.String(),
		BusinessUser:       order.BusinessID.String(),
		Title:              order.Title,
		Revisions:          order.Revisions,
		DeliveryTimeInDays: order.DeliveryTimeInDays,
		Price:              order.Price,
		Features:           features,
		OfferType:          string(order.OfferType),
		Status:             string(order.Status),
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
	}
}
