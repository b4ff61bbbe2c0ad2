package middleware

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/anasreg/supporter-hub/backend/internal/identity"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// ActorMiddleware recovers the acting identity from request credentials.
// A Firebase bearer token, when present, must verify; a guest token is
// best-effort and an invalid one just leaves the caller brand new.
// Anonymous traffic is never rejected.
func ActorMiddleware(authClient *auth.Client, guestTokens *identity.GuestTokens) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var actor identity.Actor

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader != "" && authClient != nil {
				parts := strings.Split(authHeader, " ")
				if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
					return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header must be in Bearer format")
				}

				token, err := authClient.VerifyIDToken(c.Request().Context(), parts[1])
				if err != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired ID token")
				}
				uid := token.UID
				actor.UserID = &uid
				if email, ok := token.Claims["email"].(string); ok {
					actor.Email = email
				}
			} else if guest := c.Request().Header.Get("X-Guest-Token"); guest != "" {
				if guestID, name, err := guestTokens.Parse(guest); err == nil {
					actor.GuestID = guestID
					actor.GuestName = name
				}
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

// ActorFrom returns the actor stored in the request context
func ActorFrom(c echo.Context) identity.Actor {
	if actor, ok := c.Get(actorContextKey).(identity.Actor); ok {
		return actor
	}
	return identity.Actor{}
}
