package endpoints

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noorhq/noor-server/internal/http/api"
	"github.com/noorhq/noor-server/internal/model"
	"github.com/noorhq/noor-server/internal/reminder"
	"github.com/noorhq/noor-server/internal/upstream/aladhan"
)

type fakeStore struct {
	settings map[int]model.Settings
	tasbih   map[int]model.TasbihState
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		settings: make(map[int]model.Settings),
		tasbih:   make(map[int]model.TasbihState),
	}
}

func (f *fakeStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	return 0, nil
}
func (f *fakeStore) GetUserByEmail(email string) (*model.User, error) { return nil, nil }
func (f *fakeStore) GetUserByID(id int) (*model.User, error)         { return nil, nil }
func (f *fakeStore) UpdateUserProfile(id int, email string, name *string) error {
	return nil
}

func (f *fakeStore) GetSettings(userID int) (model.Settings, error) {
	if s, ok := f.settings[userID]; ok {
		return s, nil
	}
	return model.Settings{UserID: userID, Method: aladhan.DefaultMethod}, nil
}

func (f *fakeStore) SaveSettings(s model.Settings) error {
	f.settings[s.UserID] = s
	return nil
}

func (f *fakeStore) ListReminderSettings() ([]model.Settings, error) { return nil, nil }

func (f *fakeStore) GetTasbih(userID int) (model.TasbihState, error) {
	return f.tasbih[userID], nil
}

func (f *fakeStore) SaveTasbih(s model.TasbihState) error {
	f.tasbih[s.UserID] = s
	return nil
}

type capturingPublisher struct {
	alerts []reminder.Alert
}

func (c *capturingPublisher) Publish(alert reminder.Alert) error {
	c.alerts = append(c.alerts, alert)
	return nil
}

func fakeAladhan(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"code": 200, "status": "OK",
			"data": {
				"timings": {"Fajr":"05:12","Sunrise":"06:35","Dhuhr":"12:18","Asr":"15:42","Maghrib":"18:01","Isha":"19:31"},
				"date": {
					"readable": "10 Mar 2025",
					"hijri": {"day":"10","month":{"number":9,"en":"Ramadan","ar":"رمضان"},"year":"1446","weekday":{"en":"Monday","ar":"الاثنين"}}
				}
			}
		}`))
	}))
}

func testRouter(t *testing.T, store *fakeStore, upstreamURL string) (*gin.Engine, *reminder.Scheduler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	adhan := aladhan.NewClient()
	adhan.BaseURL = upstreamURL
	sched := reminder.NewScheduler(&capturingPublisher{})

	user := &model.User{ID: 1, Email: "a@noor.app"}
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
		Middleware: []gin.HandlerFunc{func(c *gin.Context) {
			c.Set("currentUser", user)
			c.Next()
		}},
	}, PrayerModule(store, adhan, sched))
	return r, sched
}

func TestTimesWithoutLocationPrompts(t *testing.T) {
	srv := fakeAladhan(t)
	defer srv.Close()

	r, _ := testRouter(t, newFakeStore(), srv.URL)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/prayer/times", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, locationUnavailable, resp["error"])
}

func TestTimesWithQueryCoordinates(t *testing.T) {
	srv := fakeAladhan(t)
	defer srv.Close()

	r, _ := testRouter(t, newFakeStore(), srv.URL)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/prayer/times?lat=24.7136&lng=46.6753", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Date    string           `json:"date"`
		Timings model.TimingSet  `json:"timings"`
		Night   model.NightTimes `json:"night"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "10 Mar 2025", resp.Date)
	assert.Equal(t, "05:12", resp.Timings.Fajr)
	assert.NotEmpty(t, resp.Night.Midnight)
	assert.NotEmpty(t, resp.Night.LastThird)
}

func TestTimesRejectsMalformedCoordinates(t *testing.T) {
	srv := fakeAladhan(t)
	defer srv.Close()

	r, _ := testRouter(t, newFakeStore(), srv.URL)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/prayer/times?lat=999&lng=46", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNextUsesStoredLocation(t *testing.T) {
	srv := fakeAladhan(t)
	defer srv.Close()

	store := newFakeStore()
	lat, lng := 24.7136, 46.6753
	require.NoError(t, store.SaveSettings(model.Settings{UserID: 1, Latitude: &lat, Longitude: &lng}))

	r, _ := testRouter(t, store, srv.URL)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/prayer/next", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Next           model.PrayerKey `json:"next"`
		NextName       string          `json:"nextName"`
		Remaining      string          `json:"remaining"`
		ElapsedPercent float64         `json:"elapsedPercent"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Next)
	assert.NotEmpty(t, resp.NextName)
	assert.NotEmpty(t, resp.Remaining)
	assert.GreaterOrEqual(t, resp.ElapsedPercent, 0.0)
	assert.LessOrEqual(t, resp.ElapsedPercent, 100.0)
}

func TestReminderToggleSubscribes(t *testing.T) {
	srv := fakeAladhan(t)
	defer srv.Close()

	store := newFakeStore()
	lat, lng := 24.7136, 46.6753
	require.NoError(t, store.SaveSettings(model.Settings{UserID: 1, Latitude: &lat, Longitude: &lng}))

	r, sched := testRouter(t, store, srv.URL)

	on := httptest.NewRecorder()
	r.ServeHTTP(on, jsonRequest(t, http.MethodPost, "/api/prayer/reminders", gin.H{"enabled": true}))
	require.Equal(t, http.StatusOK, on.Code)
	assert.True(t, sched.Subscribed(1))

	saved, _ := store.GetSettings(1)
	assert.True(t, saved.RemindersEnabled)

	off := httptest.NewRecorder()
	r.ServeHTTP(off, jsonRequest(t, http.MethodPost, "/api/prayer/reminders", gin.H{"enabled": false}))
	require.Equal(t, http.StatusOK, off.Code)
	assert.False(t, sched.Subscribed(1))
}

func TestReminderTogglePersistsQueryCoordinates(t *testing.T) {
	srv := fakeAladhan(t)
	defer srv.Close()

	// No stored location: the toggle rides on query coordinates, which
	// must land in settings so the subscription survives a restart.
	store := newFakeStore()
	r, sched := testRouter(t, store, srv.URL)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/prayer/reminders?lat=24.7136&lng=46.6753", gin.H{"enabled": true}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, sched.Subscribed(1))

	saved, _ := store.GetSettings(1)
	assert.True(t, saved.RemindersEnabled)
	require.NotNil(t, saved.Latitude)
	require.NotNil(t, saved.Longitude)
	assert.InDelta(t, 24.7136, *saved.Latitude, 1e-9)
	assert.InDelta(t, 46.6753, *saved.Longitude, 1e-9)
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}
