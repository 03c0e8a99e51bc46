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
)

type fakeStore struct {
	tasbih map[int]model.TasbihState
}

func (f *fakeStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	return 0, nil
}
func (f *fakeStore) GetUserByEmail(email string) (*model.User, error)           { return nil, nil }
func (f *fakeStore) GetUserByID(id int) (*model.User, error)                    { return nil, nil }
func (f *fakeStore) UpdateUserProfile(id int, email string, name *string) error { return nil }
func (f *fakeStore) GetSettings(userID int) (model.Settings, error) {
	return model.Settings{}, nil
}
func (f *fakeStore) SaveSettings(s model.Settings) error             { return nil }
func (f *fakeStore) ListReminderSettings() ([]model.Settings, error) { return nil, nil }

func (f *fakeStore) GetTasbih(userID int) (model.TasbihState, error) {
	if s, ok := f.tasbih[userID]; ok {
		return s, nil
	}
	return model.TasbihState{UserID: userID, DhikrID: model.DhikrCatalog[0].ID}, nil
}

func (f *fakeStore) SaveTasbih(s model.TasbihState) error {
	f.tasbih[s.UserID] = s
	return nil
}

func testRouter(t *testing.T, store *fakeStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	user := &model.User{ID: 1, Email: "a@noor.app"}
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
		Middleware: []gin.HandlerFunc{func(c *gin.Context) {
			c.Set("currentUser", user)
			c.Next()
		}},
	}, CatalogModule(), TasbihModule(store))
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type stateBody struct {
	State     model.TasbihState `json:"state"`
	Dhikr     model.Dhikr       `json:"dhikr"`
	Completed bool              `json:"completed"`
}

func TestCatalogIsPublic(t *testing.T) {
	r := testRouter(t, &fakeStore{tasbih: map[int]model.TasbihState{}})

	w := do(t, r, http.MethodGet, "/api/tasbih/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var catalog []model.Dhikr
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &catalog))
	assert.Len(t, catalog, len(model.DhikrCatalog))
}

func TestTapCompletesCycleAtTarget(t *testing.T) {
	store := &fakeStore{tasbih: map[int]model.TasbihState{
		1: {UserID: 1, DhikrID: 6, Count: 9}, // target 10
	}}
	r := testRouter(t, store)

	w := do(t, r, http.MethodPost, "/api/tasbih/tap", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp stateBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Completed)
	assert.Equal(t, 0, resp.State.Count)
	assert.Equal(t, 1, resp.State.Laps)
	assert.Equal(t, 10, resp.State.Total)
}

func TestResetKeepsLifetimeTotal(t *testing.T) {
	store := &fakeStore{tasbih: map[int]model.TasbihState{
		1: {UserID: 1, DhikrID: 1, Count: 20, Total: 53, Laps: 1},
	}}
	r := testRouter(t, store)

	w := do(t, r, http.MethodPost, "/api/tasbih/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp stateBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.State.Count)
	assert.Equal(t, 53, resp.State.Total)
}

func TestSelectUnknownDhikrRejected(t *testing.T) {
	r := testRouter(t, &fakeStore{tasbih: map[int]model.TasbihState{}})

	w := do(t, r, http.MethodPut, "/api/tasbih/dhikr", gin.H{"dhikrId": 1234})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSelectSwitchesAndResets(t *testing.T) {
	store := &fakeStore{tasbih: map[int]model.TasbihState{
		1: {UserID: 1, DhikrID: 1, Count: 12, Total: 45, Laps: 1},
	}}
	r := testRouter(t, store)

	w := do(t, r, http.MethodPut, "/api/tasbih/dhikr", gin.H{"dhikrId": 4})
	require.Equal(t, http.StatusOK, w.Code)

	var resp stateBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.State.DhikrID)
	assert.Equal(t, 0, resp.State.Count)
	assert.Equal(t, 0, resp.State.Laps)
	assert.Equal(t, 45, resp.State.Total)
	assert.Equal(t, "لا إله إلا الله", resp.Dhikr.Text)
}
