package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the session token lifetime used when none is configured.
const DefaultTokenTTL = 24 * time.Hour

// ErrInvalidToken is returned for every token that fails decoding, signature
// or expiry checks. Callers cannot tell the cases apart.
var ErrInvalidToken = errors.New("invalid or expired token")

// Clock returns the current time.
type Clock func() time.Time

// Claims is the payload of a session token.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenCodec issues and verifies HS256 session tokens.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    Clock
}

// TokenOption configures a TokenCodec.
type TokenOption func(*TokenCodec)

// WithClock replaces the codec's time source.
func WithClock(now Clock) TokenOption {
	return func(c *TokenCodec) { c.now = now }
}

// NewTokenCodec creates a codec signing with secret. A non-positive ttl
// falls back to DefaultTokenTTL.
func NewTokenCodec(secret string, ttl time.Duration, opts ...TokenOption) *TokenCodec {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	c := &TokenCodec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL returns the configured token lifetime.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a token for the given user. The returned claims carry the
// issued-at and expiry actually encoded in the token.
func (c *TokenCodec) Issue(userID, email string) (string, Claims, error) {
	// NumericDate has second precision; truncate so exp-iat is exactly ttl.
	now := c.now().Truncate(time.Second)
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", Claims{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, claims, nil
}

// Verify checks the token's signature and expiry and returns its claims.
// A token is valid up to and including its expiry instant.
func (c *TokenCodec) Verify(tokenString string) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithStrictDecoding(),
		// The jwt validator rejects at now == exp; expiry is checked below.
		jwt.WithoutClaimsValidation(),
	)
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	if claims.UserID == "" || claims.Subject != claims.UserID || claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return Claims{}, ErrInvalidToken
	}
	if c.now().After(claims.ExpiresAt.Time) {
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}

const bearerPrefix = "Bearer "

// ExtractBearerToken returns the token from an Authorization header value.
// Only the exact "Bearer <token>" form is accepted.
func ExtractBearerToken(header string) (string, bool) {
	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
