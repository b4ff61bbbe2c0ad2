package handlers

import (
	"net/http"

	"github.com/anasreg/supporter-hub/backend/internal/board"
	"github.com/labstack/echo/v4"
)

// StatusHandler exposes in-flight mutation counts so clients can disable
// the triggering controls while a mutation is pending.
type StatusHandler struct {
	board *board.Service
}

// NewStatusHandler creates a new StatusHandler
func NewStatusHandler(boardService *board.Service) *StatusHandler {
	return &StatusHandler{board: boardService}
}

// RegisterStatusRoutes registers status-related routes
func (h *StatusHandler) RegisterStatusRoutes(g *echo.Group) {
	g.GET("/status", h.GetStatus)
}

// GetStatus reports pending mutation counts per kind
func (h *StatusHandler) GetStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"pending": h.board.Pending()})
}
