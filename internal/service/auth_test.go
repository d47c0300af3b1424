package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/kingrain94/notes-api/internal/api/dto"
	"github.com/kingrain94/notes-api/internal/auth"
	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/mocks"
	"github.com/kingrain94/notes-api/internal/repository"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockRepo *mocks.Repository
	mockUser *mocks.UserRepository
	service  *AuthService
	user     *domain.User
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockUser = new(mocks.UserRepository)

	s.mockRepo.On("User").Return(s.mockUser)

	tokens := auth.NewTokenService("test-secret", time.Hour)
	s.service = NewAuthService(s.mockRepo, tokens)

	passwordHash, err := auth.HashPassword("password", bcrypt.MinCost)
	s.Require().NoError(err)

	tenant := &domain.Tenant{
		ID:   "tenant1",
		Slug: "acme",
		Name: "Acme",
		Plan: domain.PlanFree,
	}
	s.user = &domain.User{
		ID:           "user1",
		TenantID:     tenant.ID,
		Email:        "admin@acme.test",
		PasswordHash: passwordHash,
		Role:         domain.RoleAdmin,
		Tenant:       tenant,
	}
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	// Arrange
	ctx := context.Background()
	req := dto.LoginRequest{Email: "admin@acme.test", Password: "password"}

	s.mockUser.On("GetByEmail", ctx, req.Email).Return(s.user, nil)

	// Act
	resp, err := s.service.Login(ctx, req)

	// Assert
	s.NoError(err)
	s.NotEmpty(resp.Token)
	s.Equal("user1", resp.User.ID)
	s.Equal("admin@acme.test", resp.User.Email)
	s.Equal("ADMIN", resp.User.Role)
	s.Equal("acme", resp.User.Tenant.Slug)
	s.mockUser.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	// Arrange
	ctx := context.Background()
	req := dto.LoginRequest{Email: "nobody@acme.test", Password: "password"}

	s.mockUser.On("GetByEmail", ctx, req.Email).Return(nil, repository.ErrNotFound)

	// Act
	resp, err := s.service.Login(ctx, req)

	// Assert
	s.ErrorIs(err, ErrInvalidCredentials)
	s.Nil(resp)
}

func (s *AuthServiceTestSuite) TestLogin_WrongPassword() {
	// Arrange
	ctx := context.Background()
	req := dto.LoginRequest{Email: "admin@acme.test", Password: "wrong"}

	s.mockUser.On("GetByEmail", ctx, req.Email).Return(s.user, nil)

	// Act
	resp, err := s.service.Login(ctx, req)

	// Assert
	s.ErrorIs(err, ErrInvalidCredentials)
	s.Nil(resp)
}

func (s *AuthServiceTestSuite) TestLogin_UserWithoutTenant() {
	// Arrange
	ctx := context.Background()
	req := dto.LoginRequest{Email: "admin@acme.test", Password: "password"}

	orphan := *s.user
	orphan.Tenant = nil
	s.mockUser.On("GetByEmail", ctx, req.Email).Return(&orphan, nil)

	// Act
	resp, err := s.service.Login(ctx, req)

	// Assert
	s.ErrorIs(err, ErrInvalidCredentials)
	s.Nil(resp)
}

func (s *AuthServiceTestSuite) TestLogin_StoreUnavailable() {
	// Arrange
	ctx := context.Background()
	req := dto.LoginRequest{Email: "admin@acme.test", Password: "password"}

	s.mockUser.On("GetByEmail", ctx, req.Email).Return(nil, errors.New("connection refused"))

	// Act
	resp, err := s.service.Login(ctx, req)

	// Assert
	s.ErrorIs(err, ErrUpstreamUnavailable)
	s.Nil(resp)
}
