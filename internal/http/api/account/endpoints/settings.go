package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noorhq/noor-server/internal/db"
	"github.com/noorhq/noor-server/internal/http/api"
	"github.com/noorhq/noor-server/internal/http/api/account/packets"
	"github.com/noorhq/noor-server/internal/model"
)

// SettingsModule mounts the per-user companion settings endpoints.
func SettingsModule(store db.Store) api.Module {
	ctl := &settingsController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/settings", ctl.getSettings)
		c.PUT("/settings", ctl.updateSettings)
	})
}

type settingsController struct {
	store db.Store
}

// GET /api/settings
func (s *settingsController) getSettings(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	settings, err := s.store.GetSettings(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load settings"}
	}
	return settings, nil
}

// PUT /api/settings
func (s *settingsController) updateSettings(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	settings, err := s.store.GetSettings(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load settings"}
	}

	if request.HijriAdjustment != nil {
		settings.HijriAdjustment = *request.HijriAdjustment
	}
	if request.Latitude != nil {
		settings.Latitude = request.Latitude
	}
	if request.Longitude != nil {
		settings.Longitude = request.Longitude
	}
	if request.Method != nil {
		settings.Method = *request.Method
	}

	if err := s.store.SaveSettings(settings); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save settings"}
	}

	return settings, nil
}
