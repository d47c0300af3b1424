package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/notes-api/internal/api/dto"
)

//go:generate mockery --name TenantService --output ../mocks
type TenantService interface {
	Upgrade(ctx context.Context, slug string) (*dto.TenantResponse, error)
}

type TenantHandler struct {
	*BaseHandler
	service TenantService
}

func NewTenantHandler(service TenantService) *TenantHandler {
	return &TenantHandler{service: service}
}

// UpgradeTenant godoc
// @Summary Upgrade tenant subscription
// @Description Upgrade the tenant to the PRO plan. Admin only, own tenant only, idempotent.
// @Tags    tenants
// @Produce json
// @Param   slug path string true "Tenant slug"
// @Success 200 {object} dto.UpgradeTenantResponse
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router  /tenants/{slug}/upgrade [post]
func (h *TenantHandler) UpgradeTenant(c *gin.Context) {
	tenant, err := h.service.Upgrade(h.RequestCtx(c), c.Param("slug"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UpgradeTenantResponse{
		Message: "Subscription upgraded successfully",
		Tenant:  *tenant,
	})
}
