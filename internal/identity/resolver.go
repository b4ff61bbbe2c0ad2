package identity

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/anasreg/supporter-hub/backend/internal/repositories"
	"github.com/google/uuid"
)

// FallbackName is the display name used when nothing better is known about
// an authenticated user.
const FallbackName = "Anonyme"

// guestPrefix starts every synthesized guest display name
const guestPrefix = "Fan de Foot "

// Identity is the resolved acting identity attached to posts and comments
type Identity struct {
	DisplayName string  `json:"display_name"`
	UserID      *string `json:"user_id"` // nil for guests
}

// Resolver determines the acting identity of a request through a single
// get-or-create contract: authenticated actors resolve through their
// profile, anonymous actors through a guest token, and brand-new anonymous
// actors get a fresh guest identity minted and returned as a token.
type Resolver struct {
	profiles repositories.ProfileRepository
	tokens   *GuestTokens
	randInt  func(n int) int
}

// NewResolver creates a new Resolver
func NewResolver(profiles repositories.ProfileRepository, tokens *GuestTokens) *Resolver {
	return &Resolver{
		profiles: profiles,
		tokens:   tokens,
		randInt:  rand.Intn,
	}
}

// Resolve returns the identity of the actor. When a guest identity had to
// be minted, the second return value is the signed token the client must
// persist and replay; it is empty otherwise.
func (r *Resolver) Resolve(actor Actor) (Identity, string, error) {
	if actor.Authenticated() {
		return Identity{DisplayName: r.authenticatedName(actor), UserID: actor.UserID}, "", nil
	}

	if actor.GuestID != "" {
		return Identity{DisplayName: actor.GuestName}, "", nil
	}

	name := guestPrefix + strconv.Itoa(r.randInt(1000))
	token, err := r.tokens.Issue(uuid.NewString(), name)
	if err != nil {
		return Identity{}, "", err
	}
	return Identity{DisplayName: name}, token, nil
}

// authenticatedName picks the display name of an authenticated actor:
// profile full name, else the local part of the email, else FallbackName.
// A missing profile is a fallback, not an error, since profile creation may
// still be in flight.
func (r *Resolver) authenticatedName(actor Actor) string {
	profile, err := r.profiles.GetProfileByUserID(*actor.UserID)
	if err == nil && profile.FullName != "" {
		return profile.FullName
	}
	if at := strings.Index(actor.Email, "@"); at > 0 {
		return actor.Email[:at]
	}
	return FallbackName
}
