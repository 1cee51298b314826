// Package auth provides bearer-token verification against the identity provider.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingToken indicates that no bearer token was supplied.
	ErrMissingToken = errors.New("missing token")
	// ErrInvalidToken indicates that the supplied token failed verification.
	ErrInvalidToken = errors.New("invalid token")
)

// Identity is the verified external identity carried by a bearer token.
type Identity struct {
	// Subject is the identity provider's stable user identifier.
	Subject string
	// Email is the account email, as attested by the identity provider.
	Email string
	// Name is an optional display name.
	Name string
}

// Claims is the token payload issued by the identity provider.
type Claims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Verifier validates bearer tokens and resolves them to identities.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a verifier for HS256 tokens signed with secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// VerifyToken parses and validates tokenString, returning the embedded identity.
func (v *Verifier) VerifyToken(tokenString string) (*Identity, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &Identity{
		Subject: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
	}, nil
}

// GenerateToken issues an HS256 token for the given identity.
// Used by tests and local tooling; production tokens come from the identity provider.
func (v *Verifier) GenerateToken(identity Identity, dur time.Duration) (string, error) {
	claims := Claims{
		Email: identity.Email,
		Name:  identity.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(dur)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}
