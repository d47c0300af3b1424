package postgres

import (
	"gorm.io/gorm"

	"github.com/kingrain94/notes-api/internal/config"
	"github.com/kingrain94/notes-api/internal/repository"
)

type postgresRepository struct {
	writerDB   *gorm.DB
	readerDB   *gorm.DB
	userRepo   repository.UserRepository
	tenantRepo repository.TenantRepository
	noteRepo   repository.NoteRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.Repository {
	return &postgresRepository{
		writerDB:   dbConnections.Writer,
		readerDB:   dbConnections.Reader,
		userRepo:   NewUserRepository(dbConnections.Writer, dbConnections.Reader),
		tenantRepo: NewTenantRepository(dbConnections.Writer, dbConnections.Reader),
		noteRepo:   NewNoteRepository(dbConnections.Writer, dbConnections.Reader),
	}
}

func (r *postgresRepository) User() repository.UserRepository {
	return r.userRepo
}

func (r *postgresRepository) Tenant() repository.TenantRepository {
	return r.tenantRepo
}

func (r *postgresRepository) Note() repository.NoteRepository {
	return r.noteRepo
}
