package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noorhq/noor-server/internal/db"
	"github.com/noorhq/noor-server/internal/http/api"
	"github.com/noorhq/noor-server/internal/http/api/tasbih/packets"
	"github.com/noorhq/noor-server/internal/model"
	"github.com/noorhq/noor-server/internal/tasbih"
)

// CatalogModule mounts the public dhikr catalog.
func CatalogModule() api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/tasbih/catalog", getCatalog)
	})
}

// TasbihModule mounts the per-user counter endpoints.
func TasbihModule(store db.Store) api.Module {
	ctl := &tasbihController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/tasbih", ctl.getState)
		c.POST("/tasbih/tap", ctl.tap)
		c.POST("/tasbih/reset", ctl.reset)
		c.PUT("/tasbih/dhikr", ctl.selectDhikr)
	})
}

type tasbihController struct {
	store db.Store
}

// load fetches the state and resolves its dhikr, falling back to the
// first catalog entry if a stored id is no longer offered.
func (t *tasbihController) load(userID int) (model.TasbihState, model.Dhikr, *api.APIError) {
	state, err := t.store.GetTasbih(userID)
	if err != nil {
		return model.TasbihState{}, model.Dhikr{}, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load counter"}
	}
	dhikr, ok := model.DhikrByID(state.DhikrID)
	if !ok {
		dhikr = model.DhikrCatalog[0]
		state = tasbih.Select(state, dhikr)
	}
	return state, dhikr, nil
}

func (t *tasbihController) save(state model.TasbihState, dhikr model.Dhikr, completed bool) (any, *api.APIError) {
	if err := t.store.SaveTasbih(state); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save counter"}
	}
	return packets.StateResponse{State: state, Dhikr: dhikr, Completed: completed}, nil
}

// GET /api/tasbih/catalog
func getCatalog(ctx *gin.Context) (any, *api.APIError) {
	return model.DhikrCatalog, nil
}

// GET /api/tasbih
func (t *tasbihController) getState(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	state, dhikr, apiErr := t.load(user.ID)
	if apiErr != nil {
		return nil, apiErr
	}
	return packets.StateResponse{State: state, Dhikr: dhikr}, nil
}

// POST /api/tasbih/tap
func (t *tasbihController) tap(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	state, dhikr, apiErr := t.load(user.ID)
	if apiErr != nil {
		return nil, apiErr
	}
	state, completed := tasbih.Advance(state, dhikr)
	return t.save(state, dhikr, completed)
}

// POST /api/tasbih/reset
func (t *tasbihController) reset(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	state, dhikr, apiErr := t.load(user.ID)
	if apiErr != nil {
		return nil, apiErr
	}
	return t.save(tasbih.Reset(state), dhikr, false)
}

// PUT /api/tasbih/dhikr
func (t *tasbihController) selectDhikr(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.SelectDhikrRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	dhikr, ok := model.DhikrByID(request.DhikrID)
	if !ok {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "unknown dhikr id"}
	}

	state, _, apiErr := t.load(user.ID)
	if apiErr != nil {
		return nil, apiErr
	}
	return t.save(tasbih.Select(state, dhikr), dhikr, false)
}
