package handlers

import (
	"library-desk/internal/config"
	"library-desk/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sony/gobreaker"
)

// breakerReporter is implemented by gateways guarded by a circuit breaker
type breakerReporter interface {
	BreakerState() gobreaker.State
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	cfg     *config.Config
	gateway services.PaymentGateway
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Config, gateway services.PaymentGateway) *HealthHandler {
	return &HealthHandler{cfg: cfg, gateway: gateway}
}

// Root handles root endpoint
// @Summary Root endpoint
// @Description Returns API status
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "running",
		"message": "📚 Library Desk API v1.0 is running",
		"mode":    h.cfg.AppMode,
		"docs":    "/swagger/index.html",
	})
}

// HealthCheck handles health check
// @Summary Health check
// @Description Check API, database and payment gateway health
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	// Check database
	dbStatus := "healthy"
	if err := config.HealthCheck(); err != nil {
		dbStatus = "unhealthy"
	}

	paymentStatus := "healthy"
	if r, ok := h.gateway.(breakerReporter); ok && r.BreakerState() != gobreaker.StateClosed {
		paymentStatus = "degraded (" + r.BreakerState().String() + ")"
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"checks": fiber.Map{
			"api":      "healthy",
			"database": dbStatus,
			"payment":  paymentStatus,
		},
	})
}

// APIInfo handles API v1 info
// @Summary API v1 Info
// @Description Returns API v1 information
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1 [get]
func (h *HealthHandler) APIInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Library Desk API v1.0",
		"version": "1.0.0",
	})
}
