package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/notes-api/internal/api/dto"
	"github.com/kingrain94/notes-api/internal/policy"
	"github.com/kingrain94/notes-api/internal/service"
	"github.com/kingrain94/notes-api/internal/utils"
)

type BaseHandler struct{}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// RespondError maps service and policy errors to HTTP responses. Raw store
// errors never reach the caller.
func (h *BaseHandler) RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "Invalid credentials"})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "Invalid or expired token"})
	case errors.Is(err, policy.ErrTenantMismatch):
		c.JSON(http.StatusForbidden, dto.Error{Error: "Access denied to this tenant", Code: dto.CodeTenantAccessDenied})
	case errors.Is(err, policy.ErrInsufficientRole):
		c.JSON(http.StatusForbidden, dto.Error{Error: "Insufficient permissions", Code: dto.CodeInsufficientRole})
	case errors.Is(err, policy.ErrNoteLimitExceeded):
		c.JSON(http.StatusForbidden, dto.Error{
			Error: "Free plan allows maximum 3 notes. Upgrade to Pro for unlimited notes.",
			Code:  dto.CodeNoteLimitExceeded,
		})
	case errors.Is(err, service.ErrNoteNotFound):
		c.JSON(http.StatusNotFound, dto.Error{Error: "Note not found"})
	case errors.Is(err, service.ErrTenantNotFound):
		c.JSON(http.StatusNotFound, dto.Error{Error: "Tenant not found"})
	case errors.Is(err, service.ErrEmptyUpdate):
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Title or content is required"})
	case errors.Is(err, service.ErrUpstreamUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.Error{Error: "Service temporarily unavailable", Code: dto.CodeUpstreamUnavailable})
	case errors.Is(err, utils.ErrNoIdentityInContext),
		errors.Is(err, utils.ErrInvalidIdentityType),
		errors.Is(err, utils.ErrIncompleteIdentity):
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "No authentication found"})
	default:
		c.JSON(http.StatusInternalServerError, dto.Error{Error: "Internal server error"})
	}
}
