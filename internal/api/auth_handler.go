package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/notes-api/internal/api/dto"
)

//go:generate mockery --name AuthService --output ../mocks
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthHandler struct {
	*BaseHandler
	service AuthService
}

func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password, returns a bearer token
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Email and password are required"})
		return
	}

	resp, err := h.service.Login(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
