package handlers

import (
	"net/http"

	"github.com/anasreg/supporter-hub/backend/internal/identity"
	"github.com/anasreg/supporter-hub/backend/internal/middleware"
	"github.com/anasreg/supporter-hub/backend/internal/models"
	"github.com/anasreg/supporter-hub/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// IdentityHandler handles HTTP requests for the acting identity
type IdentityHandler struct {
	resolver          *identity.Resolver
	profileRepository repositories.ProfileRepository
}

// NewIdentityHandler creates a new IdentityHandler
func NewIdentityHandler(resolver *identity.Resolver, profileRepo repositories.ProfileRepository) *IdentityHandler {
	return &IdentityHandler{
		resolver:          resolver,
		profileRepository: profileRepo,
	}
}

// RegisterIdentityRoutes registers identity-related routes
func (h *IdentityHandler) RegisterIdentityRoutes(g *echo.Group) {
	g.GET("/identity", h.GetIdentity)
	g.PUT("/profile", h.UpsertProfile)
}

// GetIdentity resolves the caller's display identity. A first-time
// anonymous caller gets a guest identity minted here; the returned token
// must be persisted client-side and replayed on later requests.
func (h *IdentityHandler) GetIdentity(c echo.Context) error {
	actor := middleware.ActorFrom(c)

	ident, guestToken, err := h.resolver.Resolve(actor)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := echo.Map{"identity": ident}
	if guestToken != "" {
		resp["guest_token"] = guestToken
	}
	return c.JSON(http.StatusOK, resp)
}

// UpsertProfile creates or updates the caller's profile display name.
// Only authenticated callers have a profile.
func (h *IdentityHandler) UpsertProfile(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	if !actor.Authenticated() {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	var req models.UpsertProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile := &models.Profile{
		UserID:   *actor.UserID,
		FullName: req.FullName,
	}
	if err := h.profileRepository.UpsertProfile(profile); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, profile)
}
