package handlers

import (
	"net/http"

	"github.com/anasreg/supporter-hub/backend/internal/board"
	"github.com/anasreg/supporter-hub/backend/internal/middleware"
	"github.com/anasreg/supporter-hub/backend/internal/models"
	"github.com/anasreg/supporter-hub/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	board             *board.Service
	commentRepository repositories.CommentRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(boardService *board.Service, commentRepo repositories.CommentRepository) *CommentHandler {
	return &CommentHandler{
		board:             boardService,
		commentRepository: commentRepo,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/comments", h.CreateComment)
	g.GET("/posts/:post_id/comments", h.GetComments)
}

// CreateComment attaches a reply to a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	postID := c.Param("post_id")

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	guestToken, err := h.board.AddComment(c.Request().Context(), actor, postID, req)
	if err != nil {
		return boardError(err)
	}

	resp := echo.Map{}
	if guestToken != "" {
		resp["guest_token"] = guestToken
	}
	return c.JSON(http.StatusCreated, resp)
}

// GetComments retrieves the comments of one post, oldest first. Used when
// a client expands the comment section of a single post.
func (h *CommentHandler) GetComments(c echo.Context) error {
	postID := c.Param("post_id")

	comments, err := h.commentRepository.GetCommentsByPostID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, comments)
}
