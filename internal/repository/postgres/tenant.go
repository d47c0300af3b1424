package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/notes-api/internal/domain"
)

type TenantRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewTenantRepository(writerDB, readerDB *gorm.DB) *TenantRepository {
	return &TenantRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *TenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := r.readerDB.WithContext(ctx).First(&tenant, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &tenant, nil
}

func (r *TenantRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := r.readerDB.WithContext(ctx).First(&tenant, "slug = ?", slug).Error; err != nil {
		return nil, translateError(err)
	}
	return &tenant, nil
}

func (r *TenantRepository) Update(ctx context.Context, tenant *domain.Tenant) error {
	return r.writerDB.WithContext(ctx).Save(tenant).Error
}
