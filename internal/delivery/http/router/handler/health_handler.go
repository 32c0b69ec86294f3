package handler

import (
	"net/http"

	"taskhub/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthHandler exposes the liveness probe.
type HealthHandler struct{}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check reports that the process is up and serving.
func (h *HealthHandler) Check(c echo.Context) error {
	return response.JSON(c, http.StatusOK, echo.Map{"status": "ok"})
}
