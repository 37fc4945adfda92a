package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cineplex/internal/fixtures"
	"cineplex/internal/notifications"
	"cineplex/internal/shared/config"
	"cineplex/internal/shared/database"
	"cineplex/internal/shared/testutil"
	"cineplex/pkg/cache"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status     string          `json:"status"`
	StatusCode int             `json:"status_code"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Load()
	sqlDB := testutil.NewTestDB(t, database.Models()...)

	set, err := fixtures.Generate(fixtures.Options{
		Seed:      42,
		StartDate: time.Date(2099, 3, 1, 0, 0, 0, 0, time.UTC),
		Location:  time.UTC,
	})
	require.NoError(t, err)
	require.NoError(t, fixtures.Load(t.Context(), sqlDB, set))

	engine := gin.New()
	NewRouter(cfg, &database.DB{SQL: sqlDB}, cache.NewMemoryService(), notifications.NewLogPublisher()).SetupRoutes(engine)
	return engine
}

func do(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &env)
	}
	return rec, env
}

func login(t *testing.T, engine *gin.Engine, email string) string {
	t.Helper()
	rec, env := do(t, engine, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": fixtures.DemoPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var auth struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &auth))
	require.NotEmpty(t, auth.AccessToken)
	return auth.AccessToken
}

func TestHealthRoutes(t *testing.T) {
	engine := newTestEngine(t)

	rec, _ := do(t, engine, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cineplex-backend")

	rec, _ = do(t, engine, http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pong")
}

func TestCatalogueRoutes(t *testing.T) {
	engine := newTestEngine(t)

	rec, env := do(t, engine, http.MethodGet, "/api/v1/movies", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.NotEmpty(t, list)

	rec, _ = do(t, engine, http.MethodGet, "/api/v1/genres", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, engine, http.MethodGet, "/api/v1/movies/does-not-exist", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, engine, http.MethodGet, "/api/v1/cinemas", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, engine, http.MethodGet, "/api/v1/concessions", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticatedRoutes(t *testing.T) {
	engine := newTestEngine(t)

	rec, _ := do(t, engine, http.MethodGet, "/api/v1/membership", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	customer := login(t, engine, "alex.chen@email.com")

	rec, env := do(t, engine, http.MethodGet, "/api/v1/membership", customer, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, string(env.Data), `"user_id":"u1"`)

	rec, _ = do(t, engine, http.MethodGet, "/api/v1/admin/analytics/dashboard", customer, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	admin := login(t, engine, "admin@galaxycinema.com")
	rec, env = do(t, engine, http.MethodGet, "/api/v1/admin/analytics/dashboard", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "success", env.Status)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	engine := newTestEngine(t)

	rec, env := do(t, engine, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "alex.chen@email.com",
		"password": "not-the-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "error", env.Status)
}

func TestFavoriteRoutes(t *testing.T) {
	engine := newTestEngine(t)

	rec, _ := do(t, engine, http.MethodGet, "/api/v1/users/me/favorites", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	customer := login(t, engine, "alex.chen@email.com")

	var list struct {
		Count     int `json:"count"`
		Favorites []struct {
			MovieID string `json:"movie_id"`
		} `json:"favorites"`
	}
	rec, env := do(t, engine, http.MethodGet, "/api/v1/users/me/favorites", customer, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 3, list.Count)
	assert.Equal(t, "m1", list.Favorites[0].MovieID)

	rec, _ = do(t, engine, http.MethodDelete, "/api/v1/users/me/favorites/m3", customer, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = do(t, engine, http.MethodDelete, "/api/v1/users/me/favorites/m3", customer, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, env = do(t, engine, http.MethodGet, "/api/v1/users/me/favorites/m3", customer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"is_favorite":false`)

	rec, _ = do(t, engine, http.MethodPost, "/api/v1/users/me/favorites", customer, map[string]string{"movie_id": "m3"})
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec, _ = do(t, engine, http.MethodPost, "/api/v1/users/me/favorites", customer, map[string]string{"movie_id": "m3"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, engine, http.MethodPost, "/api/v1/users/me/favorites", customer, map[string]string{"movie_id": "m99"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, engine, http.MethodPost, "/api/v1/users/me/favorites", customer, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
