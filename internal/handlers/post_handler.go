package handlers

import (
	"net/http"

	"github.com/anasreg/supporter-hub/backend/internal/board"
	"github.com/anasreg/supporter-hub/backend/internal/middleware"
	"github.com/anasreg/supporter-hub/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	board *board.Service
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(boardService *board.Service) *PostHandler {
	return &PostHandler{board: boardService}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.SharePost)
	g.POST("/posts/:id/edit", h.BeginEdit)
	g.DELETE("/posts/:id/edit", h.CancelEdit)
	g.DELETE("/posts/:id", h.DeletePost)
	g.POST("/posts/:id/reactions", h.ReactToPost)
}

// SharePost publishes a new post, or saves the post the caller is editing
func (h *PostHandler) SharePost(c echo.Context) error {
	actor := middleware.ActorFrom(c)

	var req models.SharePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	guestToken, err := h.board.Share(c.Request().Context(), actor, req)
	if err != nil {
		return boardError(err)
	}

	resp := echo.Map{}
	if guestToken != "" {
		resp["guest_token"] = guestToken
	}
	return c.JSON(http.StatusCreated, resp)
}

// BeginEdit opens the caller's composer on an existing post
func (h *PostHandler) BeginEdit(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	postID := c.Param("id")

	draft, err := h.board.BeginEdit(c.Request().Context(), actor, postID)
	if err != nil {
		return boardError(err)
	}

	return c.JSON(http.StatusOK, draft)
}

// CancelEdit drops the caller's composer draft
func (h *PostHandler) CancelEdit(c echo.Context) error {
	actor := middleware.ActorFrom(c)

	if err := h.board.CancelEdit(actor); err != nil {
		return boardError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeletePost hard-deletes a post and its comments
func (h *PostHandler) DeletePost(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	postID := c.Param("id")

	if err := h.board.Delete(c.Request().Context(), actor, postID); err != nil {
		return boardError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ReactToPost bumps a like or dislike counter on a post
func (h *PostHandler) ReactToPost(c echo.Context) error {
	postID := c.Param("id")

	var req models.ReactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.board.React(c.Request().Context(), postID, req.Kind); err != nil {
		return boardError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
