package request

// OfferDetailPayload is one tier in a create request.
// Revisions of -1 means unlimited.
type OfferDetailPayload struct {
	Title              string   `json:"title" validate:"required,max=200"`
	Revisions          int      `json:"revisions" validate:"gte=-1"`
	DeliveryTimeInDays int      `json:"delivery_time_in_days" validate:"required,gt=0"`
	Price              float64  `json:"price" validate:"gte=0"`
	Features           []string `json:"features"`
	OfferType          string   `json:"offer_type" validate:"required,oneof=basic standard premium"`
}

type CreateOfferRequest struct {
	Title       string               `json:"title" validate:"required,max=200"`
	Image       *string              `json:"image,omitempty"`
	Description string               `json:"description" validate:"required"`
	Details     []OfferDetailPayload `json:"details" validate:"required,len=3,dive"`
}

// UpdateOfferDetailPayload patches one tier, matched by offer_type
type UpdateOfferDetailPayload struct {
	OfferType          string    `json:"offer_type" validate:"required,oneof=basic standard premium"`
	Title              *string   `json:"title,omitempty" validate:"omitempty,max=200"`
	Revisions          *int      `json:"revisions,omitempty" validate:"omitempty,gte=-1"`
	DeliveryTimeInDays *int      `json:"delivery_time_in_days,omitempty" validate:"omitempty,gt=0"`
	Price              *float64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	Features           *[]string `json:"features,omitempty"`
}

// OfferListQuery carries the parsed query string of GET /api/offers/
type OfferListQuery struct {
	CreatorID       string
	MinPrice        *float64
	MaxDeliveryTime *int
	Search          string
	Ordering        string
	Page            int
	PageSize        int
}

type UpdateOfferRequest struct {
	Title       *string                    `json:"title,omitempty" validate:"omitempty,max=200"`
	Image       *string                    `json:"image,omitempty"`
	Description *string                    `json:"description,omitempty"`
	Details     []UpdateOfferDetailPayload `json:"details,omitempty" validate:"omitempty,dive"`
}
