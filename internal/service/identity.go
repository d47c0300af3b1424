package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/repository"
)

// IdentityService re-fetches the authoritative user and tenant for a
// verified token. Token claims other than the user ID are never trusted:
// role and plan can change between issuance and use, and the live record
// wins. The result is valid for the current request only.
type IdentityService struct {
	repo repository.Repository
}

func NewIdentityService(repo repository.Repository) *IdentityService {
	return &IdentityService{repo: repo}
}

func (s *IdentityService) Resolve(ctx context.Context, userID string) (*domain.Identity, error) {
	user, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: resolve user: %v", ErrUpstreamUnavailable, err)
	}

	if user.Tenant == nil {
		// A user row without its tenant is a deprovisioned account as far
		// as authorization is concerned.
		return nil, ErrUserNotFound
	}

	return &domain.Identity{User: user, Tenant: user.Tenant}, nil
}
