package repository

import (
	"context"
	"errors"

	"github.com/kingrain94/notes-api/internal/domain"
)

// ErrNotFound is returned when a record does not exist or is not visible
// from the caller's tenant. Implementations must not distinguish the two.
var ErrNotFound = errors.New("record not found")

//go:generate mockery --name UserRepository --output ../mocks
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
}

//go:generate mockery --name NoteRepository --output ../mocks
type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	GetByID(ctx context.Context, id string) (*domain.Note, error)
	List(ctx context.Context) ([]domain.Note, error)
	Update(ctx context.Context, note *domain.Note) error
	Delete(ctx context.Context, id string) error
	CountByTenant(ctx context.Context) (int64, error)
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	User() UserRepository
	Tenant() TenantRepository
	Note() NoteRepository
}
