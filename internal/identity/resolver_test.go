package identity

import (
	"testing"

	"github.com/anasreg/supporter-hub/backend/internal/models"
	"github.com/anasreg/supporter-hub/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockProfileRepo struct {
	profiles map[string]*models.Profile
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{profiles: make(map[string]*models.Profile)}
}

func (m *mockProfileRepo) GetProfileByUserID(userID string) (*models.Profile, error) {
	profile, exists := m.profiles[userID]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return profile, nil
}

func (m *mockProfileRepo) UpsertProfile(profile *models.Profile) error {
	m.profiles[profile.UserID] = profile
	return nil
}

func newTestResolver(profiles *mockProfileRepo) *Resolver {
	resolver := NewResolver(profiles, NewGuestTokens("test-secret"))
	resolver.randInt = func(n int) int { return 42 }
	return resolver
}

func TestResolveMintsGuestIdentity(t *testing.T) {
	resolver := newTestResolver(newMockProfileRepo())

	ident, token, err := resolver.Resolve(Actor{})
	require.NoError(t, err)

	assert.Equal(t, "Fan de Foot 42", ident.DisplayName)
	assert.Nil(t, ident.UserID)
	assert.NotEmpty(t, token)
}

func TestResolveGuestIdentityIsStable(t *testing.T) {
	resolver := newTestResolver(newMockProfileRepo())

	_, token, err := resolver.Resolve(Actor{})
	require.NoError(t, err)

	guestID, name, err := resolver.tokens.Parse(token)
	require.NoError(t, err)

	// Replaying the token yields the same name every time, and mints nothing
	actor := Actor{GuestID: guestID, GuestName: name}
	for i := 0; i < 2; i++ {
		ident, newToken, err := resolver.Resolve(actor)
		require.NoError(t, err)
		assert.Equal(t, name, ident.DisplayName)
		assert.Nil(t, ident.UserID)
		assert.Empty(t, newToken)
	}
}

func TestResolveAuthenticatedNameFallbackChain(t *testing.T) {
	uid := "firebase-uid-1"
	profiles := newMockProfileRepo()
	resolver := newTestResolver(profiles)

	// No profile, no email: fixed fallback
	ident, _, err := resolver.Resolve(Actor{UserID: &uid})
	require.NoError(t, err)
	assert.Equal(t, FallbackName, ident.DisplayName)
	assert.Equal(t, &uid, ident.UserID)

	// No profile: local part of the email
	ident, _, err = resolver.Resolve(Actor{UserID: &uid, Email: "karim@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "karim", ident.DisplayName)

	// Profile wins over email
	require.NoError(t, profiles.UpsertProfile(&models.Profile{UserID: uid, FullName: "Karim Benz"}))
	ident, _, err = resolver.Resolve(Actor{UserID: &uid, Email: "karim@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Karim Benz", ident.DisplayName)
}

func TestGuestTokenRoundTrip(t *testing.T) {
	tokens := NewGuestTokens("test-secret")

	token, err := tokens.Issue("guest-1", "Fan de Foot 7")
	require.NoError(t, err)

	guestID, name, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "guest-1", guestID)
	assert.Equal(t, "Fan de Foot 7", name)
}

func TestGuestTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewGuestTokens("secret-a").Issue("guest-1", "Fan de Foot 7")
	require.NoError(t, err)

	_, _, err = NewGuestTokens("secret-b").Parse(token)
	assert.Error(t, err)
}

func TestActorKey(t *testing.T) {
	uid := "uid-1"
	assert.Equal(t, "user:uid-1", Actor{UserID: &uid}.Key())
	assert.Equal(t, "guest:g-1", Actor{GuestID: "g-1", GuestName: "Fan de Foot 3"}.Key())
	assert.Equal(t, "", Actor{}.Key())
}
