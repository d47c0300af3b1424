// Package policy holds the pure access decisions. Nothing here does I/O;
// callers pass in freshly resolved state and get an allow (nil) or a typed
// denial back.
package policy

import (
	"errors"
	"slices"

	"github.com/kingrain94/notes-api/internal/domain"
)

var (
	// ErrTenantMismatch denies any request naming a tenant other than the caller's own
	ErrTenantMismatch = errors.New("access denied to this tenant")

	// ErrInsufficientRole denies callers whose role is not in the operation's required set
	ErrInsufficientRole = errors.New("insufficient permissions")

	// ErrNoteLimitExceeded denies note creation for FREE tenants at the cap
	ErrNoteLimitExceeded = errors.New("note limit exceeded for free plan")
)

// AuthorizeTenantAccess is the sole tenant-isolation gate. It must run on
// every operation that names a tenant in its route, reads included.
func AuthorizeTenantAccess(callerTenantSlug, targetTenantSlug string) error {
	if targetTenantSlug != callerTenantSlug {
		return ErrTenantMismatch
	}
	return nil
}

// AuthorizeRole allows iff the caller's role is in the required set.
func AuthorizeRole(role domain.Role, required ...domain.Role) error {
	if !slices.Contains(required, role) {
		return ErrInsufficientRole
	}
	return nil
}

// AuthorizeNoteCreation allows iff the tenant is PRO or still under the
// FREE note cap. The count is whatever the caller just read; consistency
// with concurrent inserts is the caller's concern.
func AuthorizeNoteCreation(plan domain.SubscriptionPlan, noteCount int64) error {
	if plan == domain.PlanPro {
		return nil
	}
	if noteCount < domain.FreePlanNoteLimit {
		return nil
	}
	return ErrNoteLimitExceeded
}
