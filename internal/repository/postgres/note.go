package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/repository"
)

// NoteRepository scopes every read and mutation to the caller's tenant
// taken from the request context. A note in another tenant is
// indistinguishable from a note that does not exist.
type NoteRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewNoteRepository(writerDB, readerDB *gorm.DB) *NoteRepository {
	return &NoteRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *NoteRepository) Create(ctx context.Context, note *domain.Note) error {
	if note.ID == "" {
		note.ID = uuid.New().String()
	}

	// Use writer database for create operations
	return r.writerDB.WithContext(ctx).Create(note).Error
}

func (r *NoteRepository) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	var note domain.Note

	db, err := getTenantScope(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	if err := db.Preload("User").First(&note, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &note, nil
}

// List returns the tenant's notes, newest first, with the author joined.
func (r *NoteRepository) List(ctx context.Context) ([]domain.Note, error) {
	var notes []domain.Note

	db, err := getTenantScope(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	if err := db.Preload("User").Order("created_at DESC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *NoteRepository) Update(ctx context.Context, note *domain.Note) error {
	db, err := getTenantScope(r.writerDB, ctx)
	if err != nil {
		return err
	}

	result := db.Model(&domain.Note{}).Where("id = ?", note.ID).Updates(map[string]any{
		"title":      note.Title,
		"content":    note.Content,
		"updated_at": note.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	db, err := getTenantScope(r.writerDB, ctx)
	if err != nil {
		return err
	}

	result := db.Delete(&domain.Note{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *NoteRepository) CountByTenant(ctx context.Context) (int64, error) {
	db, err := getTenantScope(r.readerDB, ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.Model(&domain.Note{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
