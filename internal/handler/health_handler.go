package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Version is the reported service version. Overridable at build time with
// -ldflags "-X usersvc/internal/handler.Version=...".
var Version = "1.0.0"

// HealthHandler reports service liveness.
type HealthHandler struct {
	serviceName string
}

// NewHealthHandler creates a health handler for the named service.
func NewHealthHandler(serviceName string) *HealthHandler {
	return &HealthHandler{serviceName: serviceName}
}

// HealthResponse is the /health payload.
type HealthResponse struct {
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// Health godoc
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Service:   h.serviceName,
		Version:   Version,
		Timestamp: time.Now().UTC(),
	})
}
