package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the session validity window.
const DefaultTokenTTL = 12 * time.Hour

var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	errMissingSecret  = errors.New("token secret not configured")
)

// Claims is the payload carried by a session token.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256 session tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService builds a TokenService. A nil clock uses time.Now and a
// non-positive ttl falls back to DefaultTokenTTL.
func NewTokenService(secret string, ttl time.Duration, now func() time.Time) (*TokenService, error) {
	if secret == "" {
		return nil, errMissingSecret
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	if now == nil {
		now = time.Now
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: now}, nil
}

// TTL returns the validity window of issued tokens.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token for userID that expires ttl from now.
func (s *TokenService) Issue(userID int64) (string, error) {
	if userID <= 0 {
		return "", errors.New("user id is required")
	}
	// NumericDate has second precision; truncating keeps exp exactly iat+ttl.
	now := s.now().UTC().Truncate(time.Second)
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate checks signature and expiry and returns the embedded user id.
// A token is accepted up to and including its expiry instant.
func (s *TokenService) Validate(raw string) (int64, error) {
	if raw == "" {
		return 0, ErrTokenMalformed
	}
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return 0, ErrTokenMalformed
	}
	if claims.UserID <= 0 || claims.ExpiresAt == nil {
		return 0, ErrTokenMalformed
	}
	if s.now().After(claims.ExpiresAt.Time) {
		return 0, ErrTokenExpired
	}
	return claims.UserID, nil
}
