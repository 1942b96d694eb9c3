package entity

import "github.com/google/uuid"

type OrderStatus string

const (
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Order snapshots the purchased tier at creation time, so later edits to the
// OfferDetail never change what the customer bought.
type Order struct {
	Base
	CustomerID         uuid.UUID   `db:"customer_id"`
	BusinessID         uuid.UUID   `db:"business_id"`
	OfferDetailID      uuid.UUID   `db:"offer_detail_id"`
	Title              string      `db:"title"`
	Revisions          int         `db:"revisions"`
	DeliveryTimeInDays int         `db:"delivery_time_in_days"`
	Price              float64     `db:"price"`
	Features           []string    `db:"features"`
	OfferType          OfferType   `db:"offer_type"`
	Status             OrderStatus `db:"status"`
}

// CanTransitionTo reports whether the status change is a permitted forward move
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s != OrderStatusInProgress {
		return false
	}
	return next == OrderStatusCompleted || next == OrderStatusCancelled
}
