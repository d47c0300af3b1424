package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kingrain94/notes-api/internal/domain"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed token, wrong algorithm, expired. Callers must not be able to
// tell which one it was.
var ErrInvalidToken = errors.New("invalid or expired token")

// DefaultTokenTTL is used when no expiration is configured.
const DefaultTokenTTL = 24 * time.Hour

// Claims is the signed identity snapshot embedded in every token.
//
// It reflects the user at issuance time only. Role, tenant and plan may
// change before the token expires, so authorization decisions never read
// these fields directly - the identity resolver re-fetches the user by
// UserID on every request.
type Claims struct {
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	TenantID   string `json:"tenant_id"`
	TenantSlug string `json:"tenant_slug"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed tokens. The signing secret
// is injected at construction and never rotated at runtime.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue produces a signed, time-bounded token for the given user and tenant.
func (s *TokenService) Issue(user *domain.User, tenant *domain.Tenant) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID:     user.ID,
		Email:      user.Email,
		Role:       string(user.Role),
		TenantID:   tenant.ID,
		TenantSlug: tenant.Slug,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry without any database round-trip.
// All failures collapse to ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		// Reject algorithm-switching: only HMAC tokens are ever issued.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
