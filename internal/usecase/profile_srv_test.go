package usecase

import (
	"context"
	"testing"
	"time"

	"freelance-marketplace/internal/data/entity"
	"freelance-marketplace/internal/data/repository"
	"freelance-marketplace/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUpdateProfile_OnlyOwner(t *testing.T) {
	userID := uuid.New()

	svc := NewProfileService(&repository.Repository{}, testLogger())

	location := "Berlin"
	_, err := svc.UpdateProfile(context.Background(), userID.String(), uuid.New(), &request.UpdateProfileRequest{
		Location: &location,
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")
}

func TestUpdateProfile_SplitsUserAndProfileFields(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	var updatedUser *entity.User
	var updatedProfile *entity.Profile

	existing := &entity.ProfileWithUser{
		Profile: entity.Profile{
			Base: entity.Base{ID: uuid.New(), CreatedAt: now},
			UserID:       userID,
			Location:     "Hamburg",
		},
		Username:  "maxmuster",
		FirstName: "Max",
		Role:      entity.RoleBusiness,
	}

	repo := &repository.Repository{
		Profile: &mockProfileRepo{
			FindByUserIDFn: func(ctx context.Context, id uuid.UUID) (*entity.ProfileWithUser, error) {
				return existing, nil
			},
			UpdateFn: func(ctx context.Context, profile *entity.Profile) error {
				updatedProfile = profile
				return nil
			},
		},
		User: &mockUserRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
				return &entity.User{
					Base:      entity.Base{ID: userID},
					Username:  "maxmuster",
					FirstName: "Max",
					Role:      entity.RoleBusiness,
				}, nil
			},
			UpdateFn: func(ctx context.Context, user *entity.User) error {
				updatedUser = user
				return nil
			},
		},
	}

	svc := NewProfileService(withInTx(repo), testLogger())

	firstName := "Maximilian"
	location := "Berlin"
	_, err := svc.UpdateProfile(context.Background(), userID.String(), userID, &request.UpdateProfileRequest{
		FirstName: &firstName,
		Location:  &location,
	})

	assert.NoError(t, err)
	assert.NotNil(t, updatedUser)
	assert.Equal(t, "Maximilian", updatedUser.FirstName)
	assert.NotNil(t, updatedProfile)
	assert.Equal(t, "Berlin", updatedProfile.Location)
}

func TestGetProfile_NotFound(t *testing.T) {
	repo := &repository.Repository{
		Profile: &mockProfileRepo{
			FindByUserIDFn: func(ctx context.Context, id uuid.UUID) (*entity.ProfileWithUser, error) {
				return nil, nil
			},
		},
	}

	svc := NewProfileService(repo, testLogger())

	_, err := svc.GetProfile(context.Background(), uuid.New().String())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestListBusinessProfiles(t *testing.T) {
	repo := &repository.Repository{
		Profile: &mockProfileRepo{
			FindAllByRoleFn: func(ctx context.Context, role entity.UserRole) ([]*entity.ProfileWithUser, error) {
				assert.Equal(t, entity.RoleBusiness, role)
				return []*entity.ProfileWithUser{
					{Profile: entity.Profile{UserID: uuid.New()}, Username: "a", Role: entity.RoleBusiness},
					{Profile: entity.Profile{UserID: uuid.New()}, Username: "b", Role: entity.RoleBusiness},
				}, nil
			},
		},
	}

	svc := NewProfileService(repo, testLogger())

	profiles, err := svc.ListBusinessProfiles(context.Background())

	assert.NoError(t, err)
	assert.Len(t, profiles, 2)
	assert.Equal(t, "business", profiles[0].Type)
}
