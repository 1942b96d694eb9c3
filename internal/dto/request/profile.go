package request

// UpdateProfileRequest is a partial update; nil fields stay untouched.
// The user's type is fixed at registration and is not accepted here.
type UpdateProfileRequest struct {
	FirstName    *string `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName     *string `json:"last_name,omitempty" validate:"omitempty,max=150"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	File         *string `json:"file,omitempty" validate:"omitempty,max=255"`
	Location     *string `json:"location,omitempty" validate:"omitempty,max=100"`
	Tel          *string `json:"tel,omitempty" validate:"omitempty,max=20"`
	Description  *string `json:"description,omitempty"`
	WorkingHours *string `json:"working_hours,omitempty" validate:"omitempty,max=50"`
}
