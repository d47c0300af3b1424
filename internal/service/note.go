package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kingrain94/notes-api/internal/api/dto"
	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/policy"
	"github.com/kingrain94/notes-api/internal/repository"
	"github.com/kingrain94/notes-api/internal/utils"
)

//go:generate mockery --name NoteBroadcaster --output ../mocks
type NoteBroadcaster interface {
	BroadcastEvent(event *dto.NoteEvent)
}

type NoteService struct {
	repo        repository.Repository
	broadcaster NoteBroadcaster
}

func NewNoteService(repo repository.Repository) *NoteService {
	return &NoteService{repo: repo}
}

// SetBroadcaster sets the live-stream broadcaster
func (s *NoteService) SetBroadcaster(broadcaster NoteBroadcaster) {
	s.broadcaster = broadcaster
}

// List returns the caller's tenant notes, newest first.
func (s *NoteService) List(ctx context.Context) ([]dto.NoteResponse, error) {
	notes, err := s.repo.Note().List(ctx)
	if err != nil {
		if isIdentityErr(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: list notes: %v", ErrUpstreamUnavailable, err)
	}
	return dto.FromNotes(notes), nil
}

// Create stores a new note for the caller's tenant after the quota check.
//
// The plan and note count are read fresh here rather than taken from the
// resolved identity, so an upgrade committed after authentication is
// honored immediately. The count-then-insert is best effort: two
// concurrent creates on a FREE tenant at the cap can both pass the check.
func (s *NoteService) Create(ctx context.Context, req dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	identity, err := utils.GetIdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	tenant, err := s.repo.Tenant().GetByID(ctx, identity.Tenant.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("%w: load tenant: %v", ErrUpstreamUnavailable, err)
	}

	count, err := s.repo.Note().CountByTenant(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: count notes: %v", ErrUpstreamUnavailable, err)
	}

	if err := policy.AuthorizeNoteCreation(tenant.Plan, count); err != nil {
		return nil, err
	}

	note := &domain.Note{
		TenantID: identity.Tenant.ID,
		UserID:   identity.User.ID,
		Title:    req.Title,
		Content:  req.Content,
	}
	if err := s.repo.Note().Create(ctx, note); err != nil {
		return nil, fmt.Errorf("%w: create note: %v", ErrUpstreamUnavailable, err)
	}

	note.User = identity.User
	resp := dto.FromNote(note)

	if s.broadcaster != nil {
		s.broadcaster.BroadcastEvent(&dto.NoteEvent{
			Type:     dto.NoteEventCreated,
			TenantID: note.TenantID,
			Note:     resp,
		})
	}

	return resp, nil
}

// GetByID returns a note of the caller's tenant. A note owned by another
// tenant yields the same ErrNoteNotFound as a note that does not exist.
func (s *NoteService) GetByID(ctx context.Context, id string) (*dto.NoteResponse, error) {
	note, err := s.repo.Note().GetByID(ctx, id)
	if err != nil {
		return nil, s.mapNoteErr(err, "get note")
	}
	return dto.FromNote(note), nil
}

// Update applies a partial update; at least one field must be present.
func (s *NoteService) Update(ctx context.Context, id string, req dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	if req.Title == "" && req.Content == "" {
		return nil, ErrEmptyUpdate
	}

	note, err := s.repo.Note().GetByID(ctx, id)
	if err != nil {
		return nil, s.mapNoteErr(err, "load note")
	}

	if req.Title != "" {
		note.Title = req.Title
	}
	if req.Content != "" {
		note.Content = req.Content
	}
	note.UpdatedAt = time.Now()

	if err := s.repo.Note().Update(ctx, note); err != nil {
		return nil, s.mapNoteErr(err, "update note")
	}

	resp := dto.FromNote(note)

	if s.broadcaster != nil {
		s.broadcaster.BroadcastEvent(&dto.NoteEvent{
			Type:     dto.NoteEventUpdated,
			TenantID: note.TenantID,
			Note:     resp,
		})
	}

	return resp, nil
}

func (s *NoteService) Delete(ctx context.Context, id string) error {
	identity, err := utils.GetIdentityFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.repo.Note().Delete(ctx, id); err != nil {
		return s.mapNoteErr(err, "delete note")
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastEvent(&dto.NoteEvent{
			Type:     dto.NoteEventDeleted,
			TenantID: identity.Tenant.ID,
			NoteID:   id,
		})
	}

	return nil
}

func (s *NoteService) mapNoteErr(err error, op string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNoteNotFound
	}
	if isIdentityErr(err) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", ErrUpstreamUnavailable, op, err)
}

func isIdentityErr(err error) bool {
	return errors.Is(err, utils.ErrNoIdentityInContext) ||
		errors.Is(err, utils.ErrInvalidIdentityType) ||
		errors.Is(err, utils.ErrIncompleteIdentity)
}
