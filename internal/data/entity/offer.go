package entity

import "github.com/google/uuid"

type Offer struct {
	Base
	CreatorID   uuid.UUID `db:"creator_id"`
	Title       string    `db:"title"`
	Image       *string   `db:"image"`
	Description string    `db:"description"`
}

// OfferSummary carries the aggregates the list/retrieve endpoints report
type OfferSummary struct {
	Offer
	MinPrice        *float64 `db:"min_price"`
	MinDeliveryTime *int     `db:"min_delivery_time"`
}
