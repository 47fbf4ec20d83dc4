package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired is returned when the token was valid but its validity
	// window has passed. Callers message this differently from ErrTokenInvalid.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned for malformed tokens, bad signatures and
	// any other verification failure.
	ErrTokenInvalid = errors.New("invalid token")
)

// SessionClaims are the claims embedded in a session token.
type SessionClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenAuthenticator issues and verifies signed session tokens.
type TokenAuthenticator struct {
	secret string
	issuer string
	ttl    time.Duration
}

// NewTokenAuthenticator creates a new TokenAuthenticator instance.
func NewTokenAuthenticator(secret, issuer string, ttl time.Duration) TokenAuthenticator {
	return TokenAuthenticator{
		secret: secret,
		issuer: issuer,
		ttl:    ttl,
	}
}

// TTL reports the validity window tokens are issued with.
func (a *TokenAuthenticator) TTL() time.Duration {
	return a.ttl
}

// Issue generates a signed token embedding the user ID and role.
func (a *TokenAuthenticator) Issue(userID, role string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    a.issuer,
			Audience:  jwt.ClaimStrings{a.issuer},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenStr, err := token.SignedString([]byte(a.secret))
	if err != nil {
		return "", err
	}

	return tokenStr, nil
}

// Verify checks the signature and expiry of a token and returns its claims.
// An expired token yields ErrTokenExpired; everything else ErrTokenInvalid.
func (a *TokenAuthenticator) Verify(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(a.secret), nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithAudience(a.issuer),
		jwt.WithIssuer(a.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}

		return nil, ErrTokenInvalid
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
