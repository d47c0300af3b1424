package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kingrain94/notes-api/internal/api/dto"
	"github.com/kingrain94/notes-api/internal/auth"
	"github.com/kingrain94/notes-api/internal/repository"
)

type AuthService struct {
	repo   repository.Repository
	tokens *auth.TokenService
}

func NewAuthService(repo repository.Repository, tokens *auth.TokenService) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
	}
}

// Login authenticates by email and password and issues a signed token.
// Unknown email and wrong password both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.User().GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: find user: %v", ErrUpstreamUnavailable, err)
	}

	if !auth.ComparePassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if user.Tenant == nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user, user.Tenant)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &dto.LoginResponse{
		Token: token,
		User:  dto.FromUser(user),
	}, nil
}
