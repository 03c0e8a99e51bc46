package endpoints

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/noorhq/noor-server/internal/http/api"
	"github.com/noorhq/noor-server/internal/model"
	"github.com/noorhq/noor-server/internal/quran"
	"github.com/noorhq/noor-server/internal/redis"
	"github.com/noorhq/noor-server/internal/upstream/alquran"
)

// the surah corpus never changes, the cache only shields the upstream
const surahCacheTTL = 24 * time.Hour

// QuranModule mounts the surah index and reader endpoints. mirror may be
// nil when audio mirroring is not configured.
func QuranModule(client *alquran.Client, mirror *quran.Mirror) api.Module {
	ctl := &quranController{client: client, mirror: mirror}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/quran/surahs", ctl.listSurahs)
		c.PUBLIC_GET("/quran/surahs/:number", ctl.getSurah)
	})
}

type quranController struct {
	client *alquran.Client
	mirror *quran.Mirror
}

// GET /api/quran/surahs
func (q *quranController) listSurahs(ctx *gin.Context) (any, *api.APIError) {
	var cached []model.Surah
	if redis.GetJSON(ctx.Request.Context(), "quran:surahs", &cached) {
		return cached, nil
	}

	surahs, err := q.client.SurahList(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("surah list fetch failed")
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "could not fetch surah list"}
	}

	redis.SetJSON(ctx.Request.Context(), "quran:surahs", surahs, surahCacheTTL)
	return surahs, nil
}

// GET /api/quran/surahs/:number
func (q *quranController) getSurah(ctx *gin.Context) (any, *api.APIError) {
	number, err := strconv.Atoi(ctx.Param("number"))
	if err != nil || number < 1 || number > 114 {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "surah number must be between 1 and 114"}
	}

	cacheKey := fmt.Sprintf("quran:surah:%d", number)
	var surah model.FullSurah
	if !redis.GetJSON(ctx.Request.Context(), cacheKey, &surah) {
		fetched, err := q.client.Surah(ctx.Request.Context(), number)
		if err != nil {
			log.Error().Err(err).Int("surah", number).Msg("surah fetch failed")
			return nil, &api.APIError{Code: http.StatusBadGateway, Message: "could not fetch surah"}
		}
		surah = *fetched
		redis.SetJSON(ctx.Request.Context(), cacheKey, surah, surahCacheTTL)
	}

	// rewrite after the cache so mirror state stays fresh
	q.mirror.Rewrite(&surah)
	return surah, nil
}
