package entity

import "github.com/google/uuid"

type OfferType string

const (
	OfferTypeBasic    OfferType = "basic"
	OfferTypeStandard OfferType = "standard"
	OfferTypePremium  OfferType = "premium"
)

// OfferDetail is one pricing tier of an offer.
// Revisions of -1 means unlimited.
type OfferDetail struct {
	BaseSimple
	OfferID            uuid.UUID `db:"offer_id"`
	Title              string    `db:"title"`
	Revisions          int       `db:"revisions"`
	DeliveryTimeInDays int       `db:"delivery_time_in_days"`
	Price              float64   `db:"price"`
	Features           []string  `db:"features"`
	OfferType          OfferType `db:"offer_type"`
}
