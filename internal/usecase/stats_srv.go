package usecase

import (
	"context"
	"fmt"

	"freelance-marketplace/internal/data/entity"
	"freelance-marketplace/internal/data/repository"
	"freelance-marketplace/internal/dto/response"
	"freelance-marketplace/pkg/utils"

	"go.uber.org/zap"
)

type StatsService interface {
	GetBaseInfo(ctx context.Context) (*response.BaseInfoResponse, error)
}

type statsService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewStatsService(repo *repository.Repository, log *zap.Logger) StatsService {
	return &statsService{
		repo: repo,
		log:  log.With(zap.String("service", "stats")),
	}
}

func (s *statsService) GetBaseInfo(ctx context.Context) (*response.BaseInfoResponse, error) {
	avgRating, reviewCount, err := s.repo.Review.GetPlatformStats(ctx)
	if err != nil {
		s.log.Error("Failed to get review stats", zap.Error(err))
		return nil, fmt.Errorf("get base info: %w", err)
	}

	businessCount, err := s.repo.User.CountByRole(ctx, entity.RoleBusiness)
	if err != nil {
		s.log.Error("Failed to count business profiles", zap.Error(err))
		return nil, fmt.Errorf("get base info: %w", err)
	}

	offerCount, err := s.repo.Offer.CountTotal(ctx)
	if err != nil {
		s.log.Error("Failed to count offers", zap.Error(err))
		return nil, fmt.Errorf("get base info: %w", err)
	}

	return &response.BaseInfoResponse{
		ReviewCount:          reviewCount,
		AverageRating:        utils.RoundToOneDecimal(avgRating),
		BusinessProfileCount: businessCount,
		OfferCount:           offerCount,
	}, nil
}
