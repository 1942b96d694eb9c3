package entity

import "github.com/google/uuid"

// Profile holds the display fields attached 1:1 to a user.
// The customer/business split lives on the user's role and is fixed at registration.
type Profile struct {
	Base
	UserID       uuid.UUID `db:"user_id"`
	File         *string   `db:"file"`
	Location     string    `db:"location"`
	Description  string    `db:"description"`
	WorkingHours string    `db:"working_hours"`
	Tel          string    `db:"tel"`
}

// ProfileWithUser is the joined shape the profile endpoints serve
type ProfileWithUser struct {
	Profile
	Username  string   `db:"username"`
	FirstName string   `db:"first_name"`
	LastName  string   `db:"last_name"`
	Email     string   `db:"email"`
	Role      UserRole `db:"role"`
}
