package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kingrain94/notes-api/internal/api/dto"
	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/repository"
)

type TenantService struct {
	repo repository.Repository
}

func NewTenantService(repo repository.Repository) *TenantService {
	return &TenantService{repo: repo}
}

func (s *TenantService) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	tenant, err := s.repo.Tenant().GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("%w: find tenant: %v", ErrUpstreamUnavailable, err)
	}
	return tenant, nil
}

// Upgrade moves a tenant from FREE to PRO. The transition is one-way and
// idempotent: upgrading an already-PRO tenant succeeds without touching
// the store. Reaching this method requires the caller to have passed the
// tenant and admin-role gates.
func (s *TenantService) Upgrade(ctx context.Context, slug string) (*dto.TenantResponse, error) {
	tenant, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if tenant.Plan == domain.PlanPro {
		resp := dto.FromTenant(tenant)
		return &resp, nil
	}

	tenant.Plan = domain.PlanPro
	tenant.UpdatedAt = time.Now()
	if err := s.repo.Tenant().Update(ctx, tenant); err != nil {
		return nil, fmt.Errorf("%w: update tenant plan: %v", ErrUpstreamUnavailable, err)
	}

	resp := dto.FromTenant(tenant)
	return &resp, nil
}
