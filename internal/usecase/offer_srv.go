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

type OfferService interface {
	ListOffers(ctx context.Context, query *request.OfferListQuery) (*response.PaginatedResponse[response.OfferListResponse], error)
	CreateOffer(ctx context.Context, callerID uuid.UUID, req *request.CreateOfferRequest) (*response.OfferListResponse, error)
	GetOffer(ctx context.Context, offerID string) (*response.OfferListResponse, error)
	UpdateOffer(ctx context.Context, offerID string, callerID uuid.UUID, req *request.UpdateOfferRequest) (*response.OfferListResponse, error)
	DeleteOffer(ctx context.Context, offerID string, callerID uuid.UUID) error
	GetOfferDetail(ctx context.Context, detailID string) (*response.OfferDetailResponse, error)
}

type offerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOfferService(repo *repository.Repository, log *zap.Logger) OfferService {
	return &offerService{
		repo: repo,
		log:  log.With(zap.String("service", "offer")),
	}
}

func (s *offerService) ListOffers(ctx context.Context, query *request.OfferListQuery) (*response.PaginatedResponse[response.OfferListResponse], error) {
	filter := repository.OfferFilter{
		MinPrice:        query.MinPrice,
		MaxDeliveryTime: query.MaxDeliveryTime,
		Search:          query.Search,
		Ordering:        query.Ordering,
		Limit:           query.PageSize,
		Offset:          utils.CalculateOffset(query.Page, query.PageSize),
	}

	if query.CreatorID != "" {
		creatorUUID, err := uuid.Parse(query.CreatorID)
		if err != nil {
			return nil, fmt.Errorf("invalid creator ID format %s: %w", query.CreatorID, err)
		}
		filter.CreatorID = &creatorUUID
	}

	offers, err := s.repo.Offer.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list offers", zap.Error(err))
		return nil, fmt.Errorf("list offers: %w", err)
	}

	total, err := s.repo.Offer.CountAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count offers", zap.Error(err))
		return nil, fmt.Errorf("count offers: %w", err)
	}

	responses := make([]response.OfferListResponse, len(offers))
	for i, offer := range offers {
		details, err := s.repo.OfferDetail.FindByOfferID(ctx, offer.ID)
		if err != nil {
			return nil, fmt.Errorf("get offer details: %w", err)
		}

		responses[i] = response.OfferToResponse(offer, details, s.creatorDetails(ctx, offer.CreatorID))
	}

	s.log.Info("Offers listed",
		zap.Int("count", len(offers)),
		zap.Int64("total", total),
		zap.Int("page", query.Page),
	)

	return response.NewPaginatedResponse(responses, query.Page, query.PageSize, total), nil
}

func (s *offerService) CreateOffer(ctx context.Context, callerID uuid.UUID, req *request.CreateOfferRequest) (*response.OfferListResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create offer validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// The three tiers must each appear exactly once
	seen := map[entity.OfferType]bool{}
	for _, d := range req.Details {
		offerType := entity.OfferType(d.OfferType)
		if seen[offerType] {
			return nil, fmt.Errorf("validation failed: duplicate offer_type %s", d.OfferType)
		}
		seen[offerType] = true
	}
	if !seen[entity.OfferTypeBasic] || !seen[entity.OfferTypeStandard] || !seen[entity.OfferTypePremium] {
		return nil, fmt.Errorf("validation failed: details must cover basic, standard and premium exactly once")
	}

	// Only business users may create offers
	caller, err := s.repo.User.FindByID(ctx, callerID)
	if err != nil {
		s.log.Error("Failed to load caller", zap.Error(err), zap.String("user_id", callerID.String()))
		return nil, fmt.Errorf("create offer: %w", err)
	}
	if caller == nil {
		return nil, fmt.Errorf("user %s not found", callerID.String())
	}
	if caller.Role != entity.RoleBusiness {
		return nil, fmt.Errorf("forbidden: only business users may create offers")
	}

	now := time.Now()
	offer := &entity.Offer{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CreatorID:   callerID,
		Title:       req.Title,
		Image:       req.Image,
		Description: req.Description,
	}

	// The offer and its three tiers land together or not at all
	err = s.repo.InTx(ctx, func(r *repository.Repository) error {
		if err := r.Offer.Create(ctx, offer); err != nil {
			s.log.Error("Failed to create offer", zap.Error(err))
			return fmt.Errorf("create offer: %w", err)
		}

		for _, d := range req.Details {
			detail := &entity.OfferDetail{
				BaseSimple: entity.BaseSimple{
					ID:        uuid.New(),
					CreatedAt: now,
				},
				OfferID:            offer.ID,
				Title:              d.Title,
				Revisions:          d.Revisions,
				DeliveryTimeInDays: d.DeliveryTimeInDays,
				Price:              d.Price,
				Features:           d.Features,
				OfferType:          entity.OfferType(d.OfferType),
			}

			if err := r.OfferDetail.Create(ctx, detail); err != nil {
				s.log.Error("Failed to create offer detail",
					zap.Error(err),
					zap.String("offer_id", offer.ID.String()),
					zap.String("offer_type", d.OfferType),
				)
				return fmt.Errorf("create offer detail: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Offer created",
		zap.String("offer_id", offer.ID.String()),
		zap.String("creator_id", callerID.String()),
		zap.String("title", offer.Title),
	)

	return s.buildOfferResponse(ctx, offer.ID)
}

func (s *offerService) GetOffer(ctx context.Context, offerID string) (*response.OfferListResponse, error) {
	offerUUID, err := uuid.Parse(offerID)
	if err != nil {
		return nil, fmt.Errorf("invalid offer ID format %s: %w", offerID, err)
	}

	offer, err := s.repo.Offer.FindByID(ctx, offerUUID)
	if err != nil {
		s.log.Error("Failed to get offer", zap.Error(err), zap.String("offer_id", offerID))
		return nil, fmt.Errorf("get offer: %w", err)
	}
	if offer == nil {
		return nil, fmt.Errorf("offer %s not found", offerID)
	}

	details, err := s.repo.OfferDetail.FindByOfferID(ctx, offer.ID)
	if err != nil {
		return nil, fmt.Errorf("get offer details: %w", err)
	}

	// Single retrieve carries no user_details block
	resp := response.OfferToResponse(offer, details, nil)
	return &resp, nil
}

func (s *offerService) UpdateOffer(ctx context.Context, offerID string, callerID uuid.UUID, req *request.UpdateOfferRequest) (*response.OfferListResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update offer validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	offerUUID, err := uuid.Parse(offerID)
	if err != nil {
		return nil, fmt.Errorf("invalid offer ID format %s: %w", offerID, err)
	}

	existing, err := s.repo.Offer.FindByID(ctx, offerUUID)
	if err != nil {
		s.log.Error("Failed to load offer", zap.Error(err), zap.String("offer_id", offerID))
		return nil, fmt.Errorf("get offer: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("offer %s not found", offerID)
	}

	// Only the creator may edit
	if existing.CreatorID != callerID {
		return nil, fmt.Errorf("forbidden: only the offer creator may edit this offer")
	}

	offer := existing.Offer
	offer.UpdatedAt = time.Now()

	if req.Title != nil {
		offer.Title = *req.Title
	}
	if req.Image != nil {
		offer.Image = req.Image
	}
	if req.Description != nil {
		offer.Description = *req.Description
	}

	// Offer fields and tier patches apply together or not at all
	err = s.repo.InTx(ctx, func(r *repository.Repository) error {
		if err := r.Offer.Update(ctx, &offer); err != nil {
			s.log.Error("Failed to update offer", zap.Error(err), zap.String("offer_id", offerID))
			return fmt.Errorf("update offer: %w", err)
		}

		// Patch tiers matched by offer_type
		for _, d := range req.Details {
			detail, err := r.OfferDetail.FindByOfferAndType(ctx, offerUUID, entity.OfferType(d.OfferType))
			if err != nil {
				return fmt.Errorf("get offer detail: %w", err)
			}
			if detail == nil {
				return fmt.Errorf("offer detail %s not found for offer %s", d.OfferType, offerID)
			}

			if d.Title != nil {
				detail.Title = *d.Title
			}
			if d.Revisions != nil {
				detail.Revisions = *d.Revisions
			}
			if d.DeliveryTimeInDays != nil {
				detail.DeliveryTimeInDays = *d.DeliveryTimeInDays
			}
			if d.Price != nil {
				detail.Price = *d.Price
			}
			if d.Features != nil {
				detail.Features = *d.Features
			}

			if err := r.OfferDetail.Update(ctx, detail); err != nil {
				s.log.Error("Failed to update offer detail",
					zap.Error(err),
					zap.String("offer_id", offerID),
					zap.String("offer_type", d.OfferType),
				)
				return fmt.Errorf("update offer detail: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Offer updated",
		zap.String("offer_id", offerID),
		zap.String("caller_id", callerID.String()),
	)

	return s.buildOfferResponse(ctx, offerUUID)
}

func (s *offerService) DeleteOffer(ctx context.Context, offerID string, callerID uuid.UUID) error {
	offerUUID, err := uuid.Parse(offerID)
	if err != nil {
		return fmt.Errorf("invalid offer ID format %s: %w", offerID, err)
	}

	existing, err := s.repo.Offer.FindByID(ctx, offerUUID)
	if err != nil {
		s.log.Error("Failed to load offer", zap.Error(err), zap.String("offer_id", offerID))
		return fmt.Errorf("get offer: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("offer %s not found", offerID)
	}

	// Only the creator may delete
	if existing.CreatorID != callerID {
		return fmt.Errorf("forbidden: only the offer creator may delete this offer")
	}

	// Tiers and the offer row go together or not at all
	err = s.repo.InTx(ctx, func(r *repository.Repository) error {
		if err := r.OfferDetail.DeleteByOfferID(ctx, offerUUID); err != nil {
			s.log.Error("Failed to delete offer details", zap.Error(err), zap.String("offer_id", offerID))
			return fmt.Errorf("delete offer details: %w", err)
		}

		if err := r.Offer.Delete(ctx, offerUUID); err != nil {
			s.log.Error("Failed to delete offer", zap.Error(err), zap.String("offer_id", offerID))
			return fmt.Errorf("delete offer: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("Offer deleted",
		zap.String("offer_id", offerID),
		zap.String("caller_id", callerID.String()),
	)

	return nil
}

func (s *offerService) GetOfferDetail(ctx context.Context, detailID string) (*response.OfferDetailResponse, error) {
	detailUUID, err := uuid.Parse(detailID)
	if err != nil {
		return nil, fmt.Errorf("invalid offer detail ID format %s: %w", detailID, err)
	}

	detail, err := s.repo.OfferDetail.FindByID(ctx, detailUUID)
	if err != nil {
		s.log.Error("Failed to get offer detail", zap.Error(err), zap.String("detail_id", detailID))
		return nil, fmt.Errorf("get offer detail: %w", err)
	}
	if detail == nil {
		return nil, fmt.Errorf("offer detail %s not found", detailID)
	}

	resp := response.OfferDetailToResponse(detail)
	return &resp, nil
}

// ==================== HELPER METHODS ====================

func (s *offerService) creatorDetails(ctx context.Context, creatorID uuid.UUID) *response.OfferUserDetails {
	user, err := s.repo.User.FindByID(ctx, creatorID)
	if err != nil || user == nil {
		return &response.OfferUserDetails{}
	}

	return &response.OfferUserDetails{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.Username,
	}
}

func (s *offerService) buildOfferResponse(ctx context.Context, offerID uuid.UUID) (*response.OfferListResponse, error) {
	offer, err := s.repo.Offer.FindByID(ctx, offerID)
	if err != nil || offer == nil {
		return nil, fmt.Errorf("get offer %s: %w", offerID.String(), err)
	}

	details, err := s.repo.OfferDetail.FindByOfferID(ctx, offerID)
	if err != nil {
		return nil, fmt.Errorf("get offer details: %w", err)
	}

	resp := response.OfferToResponse(offer, details, nil)
	return &resp, nil
}
