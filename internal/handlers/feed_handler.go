package handlers

import (
	"net/http"
	"time"

	"github.com/anasreg/supporter-hub/backend/internal/board"
	"github.com/anasreg/supporter-hub/backend/internal/feed"
	"github.com/anasreg/supporter-hub/backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// FeedHandler handles HTTP requests for the assembled feed
type FeedHandler struct {
	board *board.Service
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(boardService *board.Service) *FeedHandler {
	return &FeedHandler{board: boardService}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
	g.GET("/feed/stats", h.GetStats)
}

// GetFeed returns the feed rendered for the calling actor: posts newest
// first, comments oldest first, modify controls gated on ownership.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	actor := middleware.ActorFrom(c)

	posts, err := h.board.ListFeed(c.Request().Context())
	if err != nil {
		return boardError(err)
	}

	return c.JSON(http.StatusOK, feed.BuildView(posts, actor.UserID, time.Now()))
}

// GetStats returns the calling actor's publication count and impact score
func (h *FeedHandler) GetStats(c echo.Context) error {
	actor := middleware.ActorFrom(c)

	posts, err := h.board.ListFeed(c.Request().Context())
	if err != nil {
		return boardError(err)
	}

	return c.JSON(http.StatusOK, feed.BuildStats(posts, actor.UserID))
}
