package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kingrain94/notes-api/internal/domain"
)

func TestAuthorizeTenantAccess(t *testing.T) {
	tests := []struct {
		name       string
		callerSlug string
		targetSlug string
		wantErr    error
	}{
		{name: "own tenant", callerSlug: "acme", targetSlug: "acme", wantErr: nil},
		{name: "other tenant", callerSlug: "acme", targetSlug: "globex", wantErr: ErrTenantMismatch},
		{name: "unknown tenant", callerSlug: "acme", targetSlug: "no-such-tenant", wantErr: ErrTenantMismatch},
		{name: "case sensitive", callerSlug: "acme", targetSlug: "Acme", wantErr: ErrTenantMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthorizeTenantAccess(tt.callerSlug, tt.targetSlug)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthorizeRole(t *testing.T) {
	tests := []struct {
		name     string
		role     domain.Role
		required []domain.Role
		wantErr  error
	}{
		{name: "admin allowed", role: domain.RoleAdmin, required: []domain.Role{domain.RoleAdmin}, wantErr: nil},
		{name: "member denied admin route", role: domain.RoleMember, required: []domain.Role{domain.RoleAdmin}, wantErr: ErrInsufficientRole},
		{name: "member in multi-role set", role: domain.RoleMember, required: []domain.Role{domain.RoleAdmin, domain.RoleMember}, wantErr: nil},
		{name: "empty required set denies", role: domain.RoleAdmin, required: nil, wantErr: ErrInsufficientRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthorizeRole(tt.role, tt.required...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthorizeNoteCreation(t *testing.T) {
	tests := []struct {
		name      string
		plan      domain.SubscriptionPlan
		noteCount int64
		wantErr   error
	}{
		{name: "free under limit", plan: domain.PlanFree, noteCount: 0, wantErr: nil},
		{name: "free one below limit", plan: domain.PlanFree, noteCount: domain.FreePlanNoteLimit - 1, wantErr: nil},
		{name: "free at limit", plan: domain.PlanFree, noteCount: domain.FreePlanNoteLimit, wantErr: ErrNoteLimitExceeded},
		{name: "free over limit", plan: domain.PlanFree, noteCount: domain.FreePlanNoteLimit + 5, wantErr: ErrNoteLimitExceeded},
		{name: "pro at limit", plan: domain.PlanPro, noteCount: domain.FreePlanNoteLimit, wantErr: nil},
		{name: "pro far over limit", plan: domain.PlanPro, noteCount: 10000, wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthorizeNoteCreation(tt.plan, tt.noteCount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
