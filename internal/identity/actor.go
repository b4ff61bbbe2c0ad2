package identity

// Actor is the caller as recovered from request credentials, before any
// display-name resolution. A request with neither a Firebase token nor a
// guest token yields the zero Actor.
type Actor struct {
	UserID    *string // Firebase UID when authenticated
	Email     string  // Email claim of the Firebase token, if any
	GuestID   string  // Stable ID carried by a replayed guest token
	GuestName string  // Display name carried by a replayed guest token
}

// Authenticated reports whether the actor carries a verified Firebase identity
func (a Actor) Authenticated() bool {
	return a.UserID != nil
}

// Key returns the storage key under which per-actor state (the composer
// draft) is kept. Empty for a brand-new anonymous caller.
func (a Actor) Key() string {
	if a.UserID != nil {
		return "user:" + *a.UserID
	}
	if a.GuestID != "" {
		return "guest:" + a.GuestID
	}
	return ""
}
