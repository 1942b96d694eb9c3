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

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*response.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, callerID uuid.UUID, req *request.UpdateProfileRequest) (*response.ProfileResponse, error)
	ListBusinessProfiles(ctx context.Context) ([]response.BusinessProfileResponse, error)
	ListCustomerProfiles(ctx context.Context) ([]response.CustomerProfileResponse, error)
}

type profileService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProfileService(repo *repository.Repository, log *zap.Logger) ProfileService {
	return &profileService{
		repo: repo,
		log:  log.With(zap.String("service", "profile")),
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*response.ProfileResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	profile, err := s.repo.Profile.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to get profile", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("profile for user %s not found", userID)
	}

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID string, callerID uuid.UUID, req *request.UpdateProfileRequest) (*response.ProfileResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	// Only the owner may edit their profile
	if callerID != userUUID {
		return nil, fmt.Errorf("forbidden: cannot edit another user's profile")
	}

	existing, err := s.repo.Profile.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to load profile", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("profile for user %s not found", userID)
	}

	now := time.Now()

	// User display fields and profile fields change together or not at all
	err = s.repo.InTx(ctx, func(r *repository.Repository) error {
		if req.FirstName != nil || req.LastName != nil || req.Email != nil {
			user, err := r.User.FindByID(ctx, userUUID)
			if err != nil || user == nil {
				return fmt.Errorf("user %s not found", userID)
			}

			if req.FirstName != nil {
				user.FirstName = *req.FirstName
			}
			if req.LastName != nil {
				user.LastName = *req.LastName
			}
			if req.Email != nil {
				user.Email = *req.Email
			}
			user.UpdatedAt = now

			if err := r.User.Update(ctx, user); err != nil {
				s.log.Error("Failed to update user fields", zap.Error(err), zap.String("user_id", userID))
				return fmt.Errorf("update profile: %w", err)
			}
		}

		profile := entity.Profile{
			Base: entity.Base{
				ID:        existing.ID,
				CreatedAt: existing.CreatedAt,
				UpdatedAt: now,
			},
			UserID:       existing.UserID,
			File:         existing.File,
			Location:     existing.Location,
			Description:  existing.Description,
			WorkingHours: existing.WorkingHours,
			Tel:          existing.Tel,
		}

		if req.File != nil {
			profile.File = req.File
		}
		if req.Location != nil {
			profile.Location = *req.Location
		}
		if req.Description != nil {
			profile.Description = *req.Description
		}
		if req.WorkingHours != nil {
			profile.WorkingHours = *req.WorkingHours
		}
		if req.Tel != nil {
			profile.Tel = *req.Tel
		}

		if err := r.Profile.Update(ctx, &profile); err != nil {
			s.log.Error("Failed to update profile", zap.Error(err), zap.String("user_id", userID))
			return fmt.Errorf("update profile: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Profile updated", zap.String("user_id", userID))

	updated, err := s.repo.Profile.FindByUserID(ctx, userUUID)
	if err != nil || updated == nil {
		return nil, fmt.Errorf("get updated profile: %w", err)
	}

	resp := response.ProfileToResponse(updated)
	return &resp, nil
}

func (s *profileService) ListBusinessProfiles(ctx context.Context) ([]response.BusinessProfileResponse, error) {
	profiles, err := s.repo.Profile.FindAllByRole(ctx, entity.RoleBusiness)
	if err != nil {
		s.log.Error("Failed to list business profiles", zap.Error(err))
		return nil, fmt.Errorf("list business profiles: %w", err)
	}

	responses := make([]response.BusinessProfileResponse, len(profiles))
	for i, p := range profiles {
		responses[i] = response.ProfileToBusinessResponse(p)
	}

	return responses, nil
}

func (s *profileService) ListCustomerProfiles(ctx context.Context) ([]response.CustomerProfileResponse, error) {
	profiles, err := s.repo.Profile.FindAllByRole(ctx, entity.RoleCustomer)
	if err != nil {
		s.log.Error("Failed to list customer profiles", zap.Error(err))
		return nil, fmt.Errorf("list customer profiles: %w", err)
	}

	responses := make([]response.CustomerProfileResponse, len(profiles))
	for i, p := range profiles {
		responses[i] = response.ProfileToCustomerResponse(p)
	}

	return responses, nil
}
