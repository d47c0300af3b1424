package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kingrain94/notes-api/internal/repository"
	"github.com/kingrain94/notes-api/internal/utils"
)

// getTenantScope returns a scoped database instance with tenant isolation
func getTenantScope(db *gorm.DB, ctx context.Context) (*gorm.DB, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return db.WithContext(ctx).Where("tenant_id = ?", tenantID), nil
}

// translateError maps gorm's not-found to the repository sentinel so callers
// never see store internals.
func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}
	return err
}
