package handlers

import (
	"controlling_window/internal/logger"
	"controlling_window/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		// Body example: {"desired_temp_c":21,"inside_temp_c":23.4,"outside_temp_c":12.1,"condition_code":1003}
		api.POST("/decide", h.decide)
		h.registerReadingRoutes(api)
		h.registerConditionRoutes(api)
		h.registerLogRoutes(api)
		h.registerReportRoutes(api)
	}
}

func (h *Handler) registerReadingRoutes(api *gin.RouterGroup) {
	readings := api.Group("/readings")
	{
		readings.POST("", h.ingestReading)
		readings.GET("", h.listReadings)
		readings.GET("/latest", h.latestReading)
	}
}

func (h *Handler) registerConditionRoutes(api *gin.RouterGroup) {
	conditions := api.Group("/conditions")
	{
		conditions.GET("", h.favorableConditions)
		conditions.GET("/:code", h.classifyCondition)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	api.GET("/logs", h.getLogs)
}

func (h *Handler) registerReportRoutes(api *gin.RouterGroup) {
	api.GET("/reports/daily", h.dailyReport)
}
