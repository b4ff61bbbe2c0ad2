package handlers

import (
	"errors"
	"net/http"

	"github.com/anasreg/supporter-hub/backend/internal/board"
	"github.com/anasreg/supporter-hub/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// boardError maps a board failure onto an HTTP error. Validation failures
// and gate rejections keep their own statuses; anything else surfaces the
// backend message.
func boardError(err error) error {
	var validationErr *board.ValidationError
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	case errors.Is(err, board.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to modify this post")
	case errors.Is(err, board.ErrUnknownActor):
		return echo.NewHTTPError(http.StatusUnauthorized, "Fetch your identity before editing")
	case errors.As(err, &validationErr):
		return echo.NewHTTPError(http.StatusBadRequest, validationErr.Message)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
