package packets

// body for registering
type SignupRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Name     *string `json:"name"`
}

// body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateCurrentProfileRequest struct {
	Email string  `json:"email" binding:"required,email"`
	Name  *string `json:"name"`
}

// partial settings update; nil fields keep their stored value.
// The reminder flag is toggled through the prayer reminder endpoint so
// the scheduler and the stored flag change together.
type UpdateSettingsRequest struct {
	HijriAdjustment  *int     `json:"hijriAdjustment" binding:"omitempty,min=-2,max=2"`
	Latitude         *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude        *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	Method           *int     `json:"method" binding:"omitempty,min=0,max=23"`
}
