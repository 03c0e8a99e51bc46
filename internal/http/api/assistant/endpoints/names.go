package endpoints

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/noorhq/noor-server/internal/assistant"
	"github.com/noorhq/noor-server/internal/http/api"
	"github.com/noorhq/noor-server/internal/http/api/assistant/packets"
	"github.com/noorhq/noor-server/internal/model"
	"github.com/noorhq/noor-server/internal/names"
	"github.com/noorhq/noor-server/internal/redis"
	"github.com/noorhq/noor-server/internal/upstream/gemini"
)

// reflections are stable per name, cache them for a day
const reflectionCacheTTL = 24 * time.Hour

// NamesPublicModule mounts the static 99-names reference.
func NamesPublicModule() api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/names", listNames)
		c.PUBLIC_GET("/names/:id", getName)
	})
}

// NamesReflectionModule mounts the generated per-name reflection.
func NamesReflectionModule(gem *gemini.Client) api.Module {
	ctl := &namesController{gem: gem}
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/names/:id/reflection", ctl.reflect)
	})
}

type namesController struct {
	gem *gemini.Client
}

// GET /api/names
func listNames(ctx *gin.Context) (any, *api.APIError) {
	return names.All, nil
}

// GET /api/names/:id
func getName(ctx *gin.Context) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid name id"}
	}
	name, ok := names.ByID(id)
	if !ok {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "name not found"}
	}
	return name, nil
}

// POST /api/names/:id/reflection
func (n *namesController) reflect(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid name id"}
	}
	name, ok := names.ByID(id)
	if !ok {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "name not found"}
	}

	cacheKey := fmt.Sprintf("names:reflection:%d", id)
	var cached packets.ReflectionResponse
	if redis.GetJSON(ctx.Request.Context(), cacheKey, &cached) {
		return cached, nil
	}

	reply, err := n.gem.Complete(ctx.Request.Context(), assistant.SystemInstruction, nil, assistant.ReflectionPrompt(name.Arabic))
	if err != nil {
		log.Error().Err(err).Int("name", id).Msg("reflection generation failed")
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: assistant.ErrorReply}
	}

	response := packets.ReflectionResponse{
		ID:         name.ID,
		Arabic:     name.Arabic,
		Reflection: reply,
	}
	redis.SetJSON(ctx.Request.Context(), cacheKey, response, reflectionCacheTTL)
	return response, nil
}
