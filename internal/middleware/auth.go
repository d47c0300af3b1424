package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/notes-api/internal/auth"
	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/policy"
	"github.com/kingrain94/notes-api/internal/service"
	"github.com/kingrain94/notes-api/internal/utils"
)

//go:generate mockery --name IdentityResolver --output ../mocks
type IdentityResolver interface {
	Resolve(ctx context.Context, userID string) (*domain.Identity, error)
}

// AuthMiddleware runs the per-request authorization pipeline. The checks
// are strictly ordered and short-circuit on first failure: extract
// credential, verify signature and expiry, resolve the live identity,
// then (per route) tenant and role gates. It is evaluated once per
// request; nothing it resolves outlives the request.
type AuthMiddleware struct {
	tokens   *auth.TokenService
	resolver IdentityResolver
}

func NewAuthMiddleware(tokens *auth.TokenService, resolver IdentityResolver) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		resolver: resolver,
	}
}

func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		bearerToken := strings.SplitN(authHeader, " ", 2)
		if len(bearerToken) != 2 || !strings.EqualFold(bearerToken[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := m.tokens.Verify(bearerToken[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		// Claims are a snapshot from issuance time; only the user ID is
		// trusted. The live record decides role, tenant and plan.
		identity, err := m.resolver.Resolve(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				// Same body as a bad token: a caller must not learn
				// whether the token or the account went away.
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
				return
			}
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service temporarily unavailable",
				"code":  "UPSTREAM_UNAVAILABLE",
			})
			return
		}

		c.Set(string(utils.IdentityKey), identity)
		c.Set(string(utils.ClaimsKey), claims)
		c.Next()
	}
}

// RequireTenant gates routes carrying a :slug parameter: the named tenant
// must be the caller's own. Runs before any role check.
func (m *AuthMiddleware) RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFromGin(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No authentication found"})
			return
		}

		slug := c.Param("slug")
		if slug == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Tenant slug is required"})
			return
		}

		if err := policy.AuthorizeTenantAccess(identity.Tenant.Slug, slug); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Access denied to this tenant",
				"code":  "TENANT_ACCESS_DENIED",
			})
			return
		}

		c.Next()
	}
}

// RequireRole middleware checks if the user has one of the required roles
func (m *AuthMiddleware) RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFromGin(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No authentication found"})
			return
		}

		if err := policy.AuthorizeRole(identity.User.Role, roles...); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
				"code":  "INSUFFICIENT_ROLE",
			})
			return
		}

		c.Next()
	}
}

func identityFromGin(c *gin.Context) (*domain.Identity, bool) {
	value, exists := c.Get(string(utils.IdentityKey))
	if !exists {
		return nil, false
	}
	identity, ok := value.(*domain.Identity)
	if !ok || identity.User == nil || identity.Tenant == nil {
		return nil, false
	}
	return identity, true
}
