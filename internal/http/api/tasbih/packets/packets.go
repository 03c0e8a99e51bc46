package packets

import "github.com/noorhq/noor-server/internal/model"

// body for switching the active dhikr
type SelectDhikrRequest struct {
	DhikrID int `json:"dhikrId" binding:"required"`
}

// returned for every counter mutation
type StateResponse struct {
	State     model.TasbihState `json:"state"`
	Dhikr     model.Dhikr       `json:"dhikr"`
	Completed bool              `json:"completed"`
}
