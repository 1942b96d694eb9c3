package adaptor

import (
	"freelance-marketplace/internal/usecase"
	"freelance-marketplace/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Profile *ProfileHandler
	Offer   *OfferHandler
	Order   *OrderHandler
	Review  *ReviewHandler
	Stats   *StatsHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Profile: NewProfileHandler(service.Profile, log),
		Offer:   NewOfferHandler(service.Offer, config, log),
		Order:   NewOrderHandler(service.Order, log),
		Review:  NewReviewHandler(service.Review, log),
		Stats:   NewStatsHandler(service.Stats, log),
	}
}
