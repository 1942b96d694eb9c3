package entity

import "github.com/google/uuid"

// Review is unique per (reviewer, business) pair
type Review struct {
	Base
	ReviewerID     uuid.UUID `db:"reviewer_id"`
	BusinessUserID uuid.UUID `db:"business_user_id"`
	Rating         int       `db:"rating"` // 1-5
	Description    string    `db:"description"`
}
