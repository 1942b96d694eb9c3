package response

import (
	"time"

	"freelance-marketplace/internal/data/entity"
)

type ProfileResponse struct {
	User         string    `json:"user"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	File         *string   `json:"file"`
	Location     string    `json:"location"`
	Tel          string    `json:"tel"`
	Description  string    `json:"description"`
	WorkingHours string    `json:"working_hours"`
	Type         string    `json:"type"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
}

type BusinessProfileResponse struct {
	User         string  `json:"user"`
	Username     string  `json:"username"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	File         *string `json:"file"`
	Location     string  `json:"location"`
	Tel          string  `json:"tel"`
	Description  string  `json:"description"`
	WorkingHours string  `json:"working_hours"`
	Type         string  `json:"type"`
}

type CustomerProfileResponse struct {
	User      string  `json:"user"`
	Username  string  `json:"username"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	File      *string `json:"file"`
	Type      string  `json:"type"`
}

// Helper converters
func ProfileToResponse(p *entity.ProfileWithUser) ProfileResponse {
	return ProfileResponse{
		User:         p.UserID.String(),
		Username:     p.Username,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		File:         p.File,
		Location:     p.Location,
		Tel:          p.Tel,
		Description:  p.Description,
		WorkingHours: p.WorkingHours,
		Type:         string(p.Role),
		Email:        p.Email,
		CreatedAt:    p.CreatedAt,
	}
}

func ProfileToBusinessResponse(p *entity.ProfileWithUser) BusinessProfileResponse {
	return BusinessProfileResponse{
		User:         p.UserID.String(),
		Username:     p.Username,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		File:         p.File,
		Location:     p.Location,
		Tel:          p.Tel,
		Description:  p.Description,
		WorkingHours: p.WorkingHours,
		Type:         string(p.Role),
	}
}

func ProfileToCustomerResponse(p *entity.ProfileWithUser) CustomerProfileResponse {
	return CustomerProfileResponse{
		User:      p.UserID.String(),
		Username:  p.Username,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		File:      p.File,
		Type:      string(p.Role),
	}
}
