package handlers

import (
	"net/http"

	"inventory_control/internal/logger"
	"inventory_control/internal/service"

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
	router.Use(gin.Recovery(), h.requestIDMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints (no token required)
	router.POST("/signup", h.signUp)
	router.POST("/login", h.login)

	// Protected endpoints
	h.registerProtectedRoutes(router)

	// Minimal WebSocket connection (HTTP upgrade) — same port
	router.GET("/ws", h.wsConnect)

	return router
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) registerProtectedRoutes(r *gin.Engine) {
	api := r.Group("/", h.userIdMiddleware)
	{
		api.POST("/products", h.addProduct)
		api.GET("/products", h.listProducts)
		api.PUT("/products/:id/quantity", h.updateQuantity)
		api.GET("/analytics", h.getAnalytics)
		api.GET("/events", h.getEvents)
	}
}
