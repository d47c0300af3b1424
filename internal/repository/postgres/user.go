package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/notes-api/internal/domain"
)

type UserRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewUserRepository(writerDB, readerDB *gorm.DB) *UserRepository {
	return &UserRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

// GetByEmail loads a user with its tenant joined. Email is unique across
// the whole system, not per tenant.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.readerDB.WithContext(ctx).Preload("Tenant").First(&user, "email = ?", email).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// GetByID loads a user with its tenant joined.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := r.readerDB.WithContext(ctx).Preload("Tenant").First(&user, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}
