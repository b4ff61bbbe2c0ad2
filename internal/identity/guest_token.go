package identity

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

// GuestClaims are the claims of a signed guest token. The token is the
// durable client-side storage of the anonymous identity: the server issues
// it once and the client replays it on every request.
type GuestClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// GuestTokens signs and verifies guest identity tokens
type GuestTokens struct {
	secret []byte
}

// NewGuestTokens creates a GuestTokens codec with the given signing secret
func NewGuestTokens(secret string) *GuestTokens {
	return &GuestTokens{secret: []byte(secret)}
}

// Issue signs a token for a guest identity. Guest tokens carry no expiry;
// the identity lasts until the client discards the token.
func (t *GuestTokens) Issue(guestID, name string) (string, error) {
	claims := GuestClaims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: guestID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse verifies a guest token and returns the guest ID and display name
func (t *GuestTokens) Parse(tokenString string) (string, string, error) {
	claims := &GuestClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return "", "", err
	}
	if !token.Valid || claims.Subject == "" || claims.Name == "" {
		return "", "", fmt.Errorf("invalid guest token")
	}
	return claims.Subject, claims.Name, nil
}
