package packets

// body for toggling adhan reminders
type ReminderToggleRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}
