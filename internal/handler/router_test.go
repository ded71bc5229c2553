//go:build unit

package handler_test

import (
	"net/http"
	"testing"

	"theater-console/internal/handler"
	"theater-console/internal/handler/api"
	"theater-console/internal/handler/middleware"
	"theater-console/internal/pkg/config"
	"theater-console/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewRouter_RegistersConsoleRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	logger := middleware.NewLogger(config.LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: "15:04:05"})

	cfg := config.Config{CORS: config.CORSConfig{AllowOrigins: []string{"http://localhost:5173"}, AllowMethods: []string{"GET", "POST"}}}

	handler.NewRouter(engine, cfg, logger, &api.ScheduleHandler{}, &api.ShowHandler{})

	got := make([]string, 0)
	for _, r := range engine.Routes() {
		got = append(got, r.Method+" "+r.Path)
	}
	assert.ElementsMatch(t, []string{
		"GET /health",
		"POST /api/schedule/conflicts",
		"GET /api/theaters/:theaterId/screens/:screenNumber/timeline",
		"POST /api/shows",
		"PUT /api/shows/:id",
		"DELETE /api/shows/:id",
	}, got)

	w := httptest.PerformRequest(t, engine, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
