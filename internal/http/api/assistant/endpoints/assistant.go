package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/noorhq/noor-server/internal/assistant"
	"github.com/noorhq/noor-server/internal/http/api"
	"github.com/noorhq/noor-server/internal/http/api/assistant/packets"
	"github.com/noorhq/noor-server/internal/model"
	"github.com/noorhq/noor-server/internal/upstream/gemini"
)

// AssistantModule mounts the chat, hadith and tafsir endpoints.
func AssistantModule(gem *gemini.Client) api.Module {
	ctl := &assistantController{gem: gem}
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/assistant/chat", ctl.chat)
		c.POST("/assistant/hadith", ctl.hadith)
		c.POST("/assistant/ayah", ctl.explainAyah)
		// streaming writes SSE frames itself, so it bypasses the resolver
		c.Group.POST("/assistant/chat/stream", ctl.chatStream)
	})
}

type assistantController struct {
	gem *gemini.Client
}

func (a *assistantController) system(contextData string) string {
	if contextData == "" {
		return assistant.SystemInstruction
	}
	return assistant.WithContext(contextData)
}

// POST /api/assistant/chat
func (a *assistantController) chat(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.ChatRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	reply, err := a.gem.Complete(ctx.Request.Context(), a.system(request.Context), request.History, request.Message)
	if err != nil {
		log.Error().Err(err).Int("user", user.ID).Msg("chat completion failed")
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: assistant.ErrorReply}
	}

	return packets.ReplyResponse{Reply: reply}, nil
}

// POST /api/assistant/chat/stream
func (a *assistantController) chatStream(ctx *gin.Context) {
	var request packets.ChatRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")

	flusher, ok := ctx.Writer.(http.Flusher)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	// client disconnects cancel the request context, which aborts the
	// upstream stream mid-flight
	err := a.gem.Stream(ctx.Request.Context(), a.system(request.Context), request.History, request.Message,
		func(fragment string) error {
			frame, err := json.Marshal(packets.StreamChunk{Text: fragment})
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(ctx.Writer, "data: %s\n\n", frame); err != nil {
				return err
			}
			flusher.Flush()
			return nil
		})
	if err != nil {
		log.Error().Err(err).Msg("chat stream interrupted")
		fmt.Fprintf(ctx.Writer, "data: {\"error\":%q}\n\n", assistant.ErrorReply)
		flusher.Flush()
		return
	}

	fmt.Fprint(ctx.Writer, "data: [DONE]\n\n")
	flusher.Flush()
}

// POST /api/assistant/hadith
func (a *assistantController) hadith(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.HadithRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	reply, err := a.gem.Complete(ctx.Request.Context(), assistant.SystemInstruction, nil, assistant.HadithPrompt(request.Topic))
	if err != nil {
		log.Error().Err(err).Str("topic", request.Topic).Msg("hadith search failed")
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: assistant.ErrorReply}
	}

	return packets.ReplyResponse{Reply: reply}, nil
}

// POST /api/assistant/ayah
func (a *assistantController) explainAyah(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.AyahRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	prompt := assistant.AyahPrompt(request.SurahName, request.AyahNumber, request.AyahText)
	reply, err := a.gem.Complete(ctx.Request.Context(), assistant.SystemInstruction, nil, prompt)
	if err != nil {
		log.Error().Err(err).Str("surah", request.SurahName).Int("ayah", request.AyahNumber).Msg("ayah explanation failed")
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: assistant.ErrorReply}
	}

	return packets.ReplyResponse{Reply: reply}, nil
}
