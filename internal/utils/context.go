package utils

import (
	"context"
	"errors"

	"github.com/kingrain94/notes-api/internal/domain"
)

type ContextKey string

const (
	IdentityKey ContextKey = "identity"
	ClaimsKey   ContextKey = "claims"
)

var (
	ErrNoIdentityInContext = errors.New("no identity found in context")
	ErrInvalidIdentityType = errors.New("invalid identity type in context")
	ErrIncompleteIdentity  = errors.New("identity is missing user or tenant")
)

// GetIdentityFromContext returns the caller identity the auth middleware
// resolved for this request.
func GetIdentityFromContext(c context.Context) (*domain.Identity, error) {
	value := c.Value(IdentityKey)
	if value == nil {
		return nil, ErrNoIdentityInContext
	}

	identity, ok := value.(*domain.Identity)
	if !ok {
		return nil, ErrInvalidIdentityType
	}

	if identity.User == nil || identity.Tenant == nil {
		return nil, ErrIncompleteIdentity
	}

	return identity, nil
}

// GetTenantIDFromContext returns the caller's tenant ID for query scoping.
func GetTenantIDFromContext(c context.Context) (string, error) {
	identity, err := GetIdentityFromContext(c)
	if err != nil {
		return "", err
	}
	return identity.Tenant.ID, nil
}
