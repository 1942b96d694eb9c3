package usecase

import (
	"freelance-marketplace/internal/data/repository"
	"freelance-marketplace/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Profile ProfileService
	Offer   OfferService
	Order   OrderService
	Review  ReviewService
	Stats   StatsService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Profile: NewProfileService(repo, log),
		Offer:   NewOfferService(repo, log),
		Order:   NewOrderService(repo, log),
		Review:  NewReviewService(repo, log),
		Stats:   NewStatsService(repo, log),
	}
}
