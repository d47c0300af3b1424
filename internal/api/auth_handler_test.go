package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/notes-api/internal/api/dto"
	"github.com/kingrain94/notes-api/internal/service"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	mockService *MockAuthService
	handler     *AuthHandler
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockAuthService)
	s.handler = NewAuthHandler(s.mockService)
}

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin_Success() {
	// Arrange
	req := dto.LoginRequest{Email: "admin@acme.test", Password: "password"}
	expected := &dto.LoginResponse{
		Token: "signed-token",
		User: dto.UserResponse{
			ID:    "user1",
			Email: req.Email,
			Role:  "ADMIN",
			Tenant: dto.TenantResponse{
				ID:   "tenant1",
				Slug: "acme",
				Name: "Acme",
				Plan: "FREE",
			},
		},
	}

	s.mockService.On("Login", mock.Anything, req).Return(expected, nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.Login(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response dto.LoginResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("signed-token", response.Token)
	s.Equal("acme", response.User.Tenant.Slug)
	s.mockService.AssertExpectations(s.T())
}

func (s *AuthHandlerTestSuite) TestLogin_MissingFields() {
	// Arrange
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"email":"admin@acme.test"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.Login(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Login", mock.Anything, mock.Anything)
}

func (s *AuthHandlerTestSuite) TestLogin_InvalidCredentials() {
	// Arrange
	req := dto.LoginRequest{Email: "admin@acme.test", Password: "wrong"}
	s.mockService.On("Login", mock.Anything, req).Return(nil, service.ErrInvalidCredentials)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.Login(c)

	// Assert
	s.Equal(http.StatusUnauthorized, w.Code)
	var response dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("Invalid credentials", response.Error)
}

func (s *AuthHandlerTestSuite) TestLogin_StoreUnavailable() {
	// Arrange
	req := dto.LoginRequest{Email: "admin@acme.test", Password: "password"}
	s.mockService.On("Login", mock.Anything, req).Return(nil, service.ErrUpstreamUnavailable)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.Login(c)

	// Assert
	s.Equal(http.StatusServiceUnavailable, w.Code)
	var response dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(dto.CodeUpstreamUnavailable, response.Code)
}
