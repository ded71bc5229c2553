package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"theater-console/internal/handler/api"
	"theater-console/internal/handler/middleware"
	"theater-console/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, scheduleHandler *api.ScheduleHandler, showHandler *api.ShowHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, scheduleHandler, showHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger.GetSlogLogger()))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler(logger.GetSlogLogger()))
}

func setupRoutes(engine *gin.Engine, scheduleHandler *api.ScheduleHandler, showHandler *api.ShowHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/schedule"), []route{
			{Method: http.MethodPost, Path: "/conflicts", Handler: scheduleHandler.CheckConflicts},
		})
		addRoutes(apiGroup.Group("/theaters/:theaterId/screens/:screenNumber"), []route{
			{Method: http.MethodGet, Path: "/timeline", Handler: scheduleHandler.Timeline},
		})
		addRoutes(apiGroup.Group("/shows"), []route{
			{Method: http.MethodPost, Path: "", Handler: showHandler.Create},
			{Method: http.MethodPut, Path: "/:id", Handler: showHandler.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: showHandler.Delete},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
