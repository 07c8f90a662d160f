package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"blogit/internal/bootstrap"
	"blogit/internal/config"
)

func newHealthRouter(t *testing.T, app *bootstrap.App) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/healthz", NewHealthHandler(app).Check)
	return router
}

func TestHealthz_DegradedDependenciesReport503(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// MySQL reachable, redis and rabbitmq down.
	app := &bootstrap.App{
		Config: &config.Config{
			App: config.AppConfig{Name: "blogit", Env: "test"},
		},
		MySQL:     db,
		StartedAt: time.Now(),
	}
	router := newHealthRouter(t, app)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"mysql":{"ok":true}`)
	assert.Contains(t, w.Body.String(), `"rabbitmq":{"ok":false`)
	assert.Contains(t, w.Body.String(), `"redis":{"ok":false`)
}

func TestHealthz_AllDependenciesDownReport503(t *testing.T) {
	app := &bootstrap.App{
		Config: &config.Config{
			App: config.AppConfig{Name: "blogit", Env: "test"},
		},
		StartedAt: time.Now(),
	}
	router := newHealthRouter(t, app)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"mysql":{"ok":false`)
}
