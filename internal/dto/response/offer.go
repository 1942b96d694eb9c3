package response

import (
	"fmt"
	"time"

	"freelance-marketplace/internal/data/entity"
)

type OfferDetailResponse struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Revisions          int      `json:"revisions"`
	DeliveryTimeInDays int      `json:"delivery_time_in_days"`
	Price              float64  `json:"price"`
	Features           []string `json:"features"`
	OfferType          string   `json:"offer_type"`
}

// OfferDetailRef is the {id, url} pair the list endpoints carry per tier
type OfferDetailRef struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type OfferUserDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

type OfferListResponse struct {
	ID              string            `json:"id"`
	User            string            `json:"user"`
	Title           string            `json:"title"`
	Image           *string           `json:"image"`
	Description     string            `json:"description"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	Details         []OfferDetailRef  `json:"details"`
	MinPrice        *float64          `json:"min_price"`
	MinDeliveryTime *int              `json:"min_delivery_time"`
	UserDetails     *OfferUserDetails `json:"user_details,omitempty"`
}

// Helper converters
func OfferDetailToResponse(d *entity.OfferDetail) OfferDetailResponse {
	features := d.Features
	if features == nil {
		features = []string{}
	}

	return OfferDetailResponse{
		ID:                 d.ID.String(),
		Title:              d.Title,
		Revisions:          d.Revisions,
		DeliveryTimeInDays: d.DeliveryTimeInDays,
		Price:              d.Price,
		Features:           features,
		OfferType:          string(d.OfferType),
	}
}

func OfferDetailToRef(d *entity.OfferDetail) OfferDetailRef {
	return OfferDetailRef{
		ID:  d.ID.String(),
		URL: fmt.Sprintf("/api/offerdetails/%s/", d.ID.String()),
	}
}

func OfferToResponse(o *entity.OfferSummary, details []*entity.OfferDetail, userDetails *OfferUserDetails) OfferListResponse {
	refs := make([]OfferDetailRef, len(details))
	for i, d := range details {
		refs[i] = OfferDetailToRef(d)
	}

	return OfferListResponse{
		ID:              o.ID.String(),
		User:            o.CreatorID.String(),
		Title:           o.Title,
		Image:           o.Image,
		Description:     o.Description,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		Details:         refs,
		MinPrice:        o.MinPrice,
		MinDeliveryTime: o.MinDeliveryTime,
		UserDetails:     userDetails,
	}
}
