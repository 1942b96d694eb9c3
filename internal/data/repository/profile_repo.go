package repository

import (
	"context"
	"fmt"

	"freelance-marketplace/internal/data/entity"
	"freelance-marketplace/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ProfileWithUser, error)
	FindAllByRole(ctx context.Context, role entity.UserRole) ([]*entity.ProfileWithUser, error)
	Update(ctx context.Context, profile *entity.Profile) error
}

type profileRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewProfileRepository(db database.Querier, log *zap.Logger) ProfileRepository {
	return &profileRepository{
		db:  db,
		log: log.With(zap.String("repository", "profile")),
	}
}

func (r *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, user_id, file, location, description,
		                     working_hours, tel, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.UserID,
		profile.File,
		profile.Location,
		profile.Description,
		profile.WorkingHours,
		profile.Tel,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create profile",
			zap.Error(err),
			zap.String("user_id", profile.UserID.String()),
		)
		return fmt.Errorf("create profile for user %s: %w", profile.UserID.String(), err)
	}

	return nil
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ProfileWithUser, error) {
	query := `
		SELECT p.id, p.user_id, p.file, p.location, p.description,
		       p.working_hours, p.tel, p.created_at, p.updated_at,
		       u.username, u.first_name, u.last_name, u.email, u.role
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1
	`

	var profile entity.ProfileWithUser
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.File,
		&profile.Location,
		&profile.Description,
		&profile.WorkingHours,
		&profile.Tel,
		&profile.CreatedAt,
		&profile.UpdatedAt,
		&profile.Username,
		&profile.FirstName,
		&profile.LastName,
		&profile.Email,
		&profile.Role,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find profile by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find profile by user ID %s: %w", userID.String(), err)
	}

	return &profile, nil
}

func (r *profileRepository) FindAllByRole(ctx context.Context, role entity.UserRole) ([]*entity.ProfileWithUser, error) {
	query := `
		SELECT p.id, p.user_id, p.file, p.location, p.description,
		       p.working_hours, p.tel, p.created_at, p.updated_at,
		       u.username, u.first_name, u.last_name, u.email, u.role
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE u.role = $1
		ORDER BY p.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, role)
	if err != nil {
		r.log.Error("Failed to find profiles by role",
			zap.Error(err),
			zap.String("role", string(role)),
		)
		return nil, fmt.Errorf("find profiles by role %s: %w", role, err)
	}
	defer rows.Close()

	var profiles []*entity.ProfileWithUser
	for rows.Next() {
		var profile entity.ProfileWithUser
		err := rows.Scan(
			&profile.ID,
			&profile.UserID,
			&profile.File,
			&profile.Location,
			&profile.Description,
			&profile.WorkingHours,
			&profile.Tel,
			&profile.CreatedAt,
			&profile.UpdatedAt,
			&profile.Username,
			&profile.FirstName,
			&profile.LastName,
			&profile.Email,
			&profile.Role,
		)
		if err != nil {
			r.log.Error("Failed to scan profile row", zap.Error(err))
			return nil, fmt.Errorf("scan profile row: %w", err)
		}
		profiles = append(profiles, &profile)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate profile rows: %w", err)
	}

	return profiles, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	query := `
		UPDATE profiles
		SET file = $2, location = $3, description = $4,
		    working_hours = $5, tel = $6, updated_at = $7
		WHERE user_id = $1
	`

	result, err := r.db.Exec(ctx, query,
		profile.UserID,
		profile.File,
		profile.Location,
		profile.Description,
		profile.WorkingHours,
		profile.Tel,
		profile.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update profile",
			zap.Error(err),
			zap.String("user_id", profile.UserID.String()),
		)
		return fmt.Errorf("update profile for user %s: %w", profile.UserID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile for user %s not found", profile.UserID.String())
	}

	return nil
}
