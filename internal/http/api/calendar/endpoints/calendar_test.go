package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noorhq/noor-server/internal/http/api"
	"github.com/noorhq/noor-server/internal/model"
	"github.com/noorhq/noor-server/internal/upstream/aladhan"
)

type fakeStore struct {
	settings map[int]model.Settings
}

func (f *fakeStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	return 0, nil
}
func (f *fakeStore) GetUserByEmail(email string) (*model.User, error)           { return nil, nil }
func (f *fakeStore) GetUserByID(id int) (*model.User, error)                    { return nil, nil }
func (f *fakeStore) UpdateUserProfile(id int, email string, name *string) error { return nil }
func (f *fakeStore) GetSettings(userID int) (model.Settings, error) {
	return f.settings[userID], nil
}
func (f *fakeStore) SaveSettings(s model.Settings) error {
	f.settings[s.UserID] = s
	return nil
}
func (f *fakeStore) ListReminderSettings() ([]model.Settings, error) { return nil, nil }
func (f *fakeStore) GetTasbih(userID int) (model.TasbihState, error) {
	return model.TasbihState{}, nil
}
func (f *fakeStore) SaveTasbih(s model.TasbihState) error { return nil }

// serves gToH for today and hToG for event targets
func fakeAladhan(t *testing.T, hijriDay string, hijriMonth int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "/gToH/"):
			payload := `{
				"code": 200, "status": "OK",
				"data": {"hijri": {"day":"` + hijriDay + `","month":{"number":` +
				jsonInt(hijriMonth) + `,"en":"Shaban","ar":"شعبان"},"year":"1446","weekday":{"en":"Friday","ar":"الجمعة"}}}
			}`
			_, _ = w.Write([]byte(payload))
		case strings.Contains(r.URL.Path, "/hToG/"):
			_, _ = w.Write([]byte(`{"code": 200, "status": "OK", "data": {"gregorian": {"date": "30-03-2026"}}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func jsonInt(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}

func testRouter(t *testing.T, upstreamURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	adhan := aladhan.NewClient()
	adhan.BaseURL = upstreamURL
	store := &fakeStore{settings: make(map[int]model.Settings)}

	user := &model.User{ID: 1, Email: "a@noor.app"}
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
		Middleware: []gin.HandlerFunc{func(c *gin.Context) {
			c.Set("currentUser", user)
			c.Next()
		}},
	}, CalendarModule(store, adhan))
	return r
}

func TestTodayReportsActiveWhiteDays(t *testing.T) {
	srv := fakeAladhan(t, "14", 8)
	defer srv.Close()

	r := testRouter(t, srv.URL)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/calendar/today", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Hijri     model.HijriDate `json:"hijri"`
		WhiteDays struct {
			Status  model.WhiteDaysStatus `json:"status"`
			Message string                `json:"message"`
		} `json:"whiteDays"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "14", resp.Hijri.Day)
	assert.Equal(t, model.WhiteDaysActive, resp.WhiteDays.Status)
	assert.Contains(t, resp.WhiteDays.Message, "الأيام البيض")
}

func TestTodayReportsUpcomingWhiteDays(t *testing.T) {
	srv := fakeAladhan(t, "10", 8)
	defer srv.Close()

	r := testRouter(t, srv.URL)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/calendar/today", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		WhiteDays struct {
			Status model.WhiteDaysStatus `json:"status"`
		} `json:"whiteDays"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.WhiteDaysUpcoming, resp.WhiteDays.Status)
}

func TestEventsReturnsAscendingProjection(t *testing.T) {
	srv := fakeAladhan(t, "5", 8)
	defer srv.Close()

	r := testRouter(t, srv.URL)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/calendar/events", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Events []model.CalendarEvent `json:"events"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Events, 3)
	assert.True(t, resp.Events[0].Nearest)
	for i := 1; i < len(resp.Events); i++ {
		assert.GreaterOrEqual(t, resp.Events[i].DaysRemaining, resp.Events[i-1].DaysRemaining)
	}
}
