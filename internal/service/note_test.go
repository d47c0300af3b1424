package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/notes-api/internal/api/dto"
	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/mocks"
	"github.com/kingrain94/notes-api/internal/policy"
	"github.com/kingrain94/notes-api/internal/repository"
	"github.com/kingrain94/notes-api/internal/utils"
)

type NoteServiceTestSuite struct {
	suite.Suite
	mockRepo        *mocks.Repository
	mockTenant      *mocks.TenantRepository
	mockNote        *mocks.NoteRepository
	mockBroadcaster *mocks.NoteBroadcaster
	service         *NoteService
	tenant          *domain.Tenant
	user            *domain.User
}

func (s *NoteServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockTenant = new(mocks.TenantRepository)
	s.mockNote = new(mocks.NoteRepository)
	s.mockBroadcaster = new(mocks.NoteBroadcaster)

	s.mockRepo.On("Tenant").Return(s.mockTenant)
	s.mockRepo.On("Note").Return(s.mockNote)

	s.service = NewNoteService(s.mockRepo)
	s.service.SetBroadcaster(s.mockBroadcaster)

	s.tenant = &domain.Tenant{
		ID:   "tenant1",
		Slug: "acme",
		Name: "Acme",
		Plan: domain.PlanFree,
	}
	s.user = &domain.User{
		ID:       "user1",
		TenantID: s.tenant.ID,
		Email:    "user@acme.test",
		Role:     domain.RoleMember,
		Tenant:   s.tenant,
	}
}

func TestNoteService(t *testing.T) {
	suite.Run(t, new(NoteServiceTestSuite))
}

// identityCtx mimics what the auth middleware and base handler put on the
// request context.
func (s *NoteServiceTestSuite) identityCtx() context.Context {
	identity := &domain.Identity{User: s.user, Tenant: s.tenant}
	return context.WithValue(context.Background(), utils.IdentityKey, identity)
}

func (s *NoteServiceTestSuite) TestList_Success() {
	// Arrange
	ctx := s.identityCtx()
	notes := []domain.Note{
		{ID: "note2", TenantID: "tenant1", UserID: "user1", Title: "Second"},
		{ID: "note1", TenantID: "tenant1", UserID: "user1", Title: "First"},
	}

	s.mockNote.On("List", ctx).Return(notes, nil)

	// Act
	resp, err := s.service.List(ctx)

	// Assert
	s.NoError(err)
	s.Len(resp, 2)
	s.Equal("note2", resp[0].ID)
	s.Equal("note1", resp[1].ID)
	s.mockNote.AssertExpectations(s.T())
}

func (s *NoteServiceTestSuite) TestCreate_Success() {
	// Arrange
	ctx := s.identityCtx()
	req := dto.CreateNoteRequest{Title: "Standup notes", Content: "Discussed the release plan"}

	s.mockTenant.On("GetByID", ctx, "tenant1").Return(s.tenant, nil)
	s.mockNote.On("CountByTenant", ctx).Return(int64(2), nil)
	s.mockNote.On("Create", ctx, mock.AnythingOfType("*domain.Note")).Return(nil)
	s.mockBroadcaster.On("BroadcastEvent", mock.AnythingOfType("*dto.NoteEvent")).Return()

	// Act
	resp, err := s.service.Create(ctx, req)

	// Assert
	s.NoError(err)
	s.Equal("Standup notes", resp.Title)
	s.Equal("tenant1", resp.TenantID)
	s.Equal("user1", resp.UserID)
	s.Require().NotNil(resp.Author)
	s.Equal("user@acme.test", resp.Author.Email)
	s.mockNote.AssertExpectations(s.T())
	s.mockBroadcaster.AssertExpectations(s.T())
}

func (s *NoteServiceTestSuite) TestCreate_FreePlanAtLimit() {
	// Arrange
	ctx := s.identityCtx()
	req := dto.CreateNoteRequest{Title: "One too many", Content: "..."}

	s.mockTenant.On("GetByID", ctx, "tenant1").Return(s.tenant, nil)
	s.mockNote.On("CountByTenant", ctx).Return(int64(domain.FreePlanNoteLimit), nil)

	// Act
	resp, err := s.service.Create(ctx, req)

	// Assert
	s.ErrorIs(err, policy.ErrNoteLimitExceeded)
	s.Nil(resp)
	s.mockNote.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	s.mockBroadcaster.AssertNotCalled(s.T(), "BroadcastEvent", mock.Anything)
}

func (s *NoteServiceTestSuite) TestCreate_ProPlanBypassesLimit() {
	// Arrange
	ctx := s.identityCtx()
	req := dto.CreateNoteRequest{Title: "Unlimited", Content: "..."}

	pro := *s.tenant
	pro.Plan = domain.PlanPro
	s.mockTenant.On("GetByID", ctx, "tenant1").Return(&pro, nil)
	s.mockNote.On("CountByTenant", ctx).Return(int64(100), nil)
	s.mockNote.On("Create", ctx, mock.AnythingOfType("*domain.Note")).Return(nil)
	s.mockBroadcaster.On("BroadcastEvent", mock.AnythingOfType("*dto.NoteEvent")).Return()

	// Act
	resp, err := s.service.Create(ctx, req)

	// Assert
	s.NoError(err)
	s.Equal("Unlimited", resp.Title)
	s.mockNote.AssertExpectations(s.T())
}

// A quota check against the live tenant row means an upgrade committed after
// the token was issued takes effect on the very next create.
func (s *NoteServiceTestSuite) TestCreate_ReadsPlanFresh() {
	// Arrange
	ctx := s.identityCtx()
	req := dto.CreateNoteRequest{Title: "Post upgrade", Content: "..."}

	upgraded := *s.tenant
	upgraded.Plan = domain.PlanPro
	s.mockTenant.On("GetByID", ctx, "tenant1").Return(&upgraded, nil)
	s.mockNote.On("CountByTenant", ctx).Return(int64(domain.FreePlanNoteLimit), nil)
	s.mockNote.On("Create", ctx, mock.AnythingOfType("*domain.Note")).Return(nil)
	s.mockBroadcaster.On("BroadcastEvent", mock.AnythingOfType("*dto.NoteEvent")).Return()

	// Act
	resp, err := s.service.Create(ctx, req)

	// Assert
	s.NoError(err)
	s.NotNil(resp)
}

func (s *NoteServiceTestSuite) TestCreate_NoIdentity() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateNoteRequest{Title: "No caller", Content: "..."}

	// Act
	resp, err := s.service.Create(ctx, req)

	// Assert
	s.ErrorIs(err, utils.ErrNoIdentityInContext)
	s.Nil(resp)
}

func (s *NoteServiceTestSuite) TestGetByID_Success() {
	// Arrange
	ctx := s.identityCtx()
	note := &domain.Note{
		ID:       "note1",
		TenantID: "tenant1",
		UserID:   "user1",
		Title:    "Standup notes",
		User:     s.user,
	}

	s.mockNote.On("GetByID", ctx, "note1").Return(note, nil)

	// Act
	resp, err := s.service.GetByID(ctx, "note1")

	// Assert
	s.NoError(err)
	s.Equal("note1", resp.ID)
	s.Require().NotNil(resp.Author)
	s.Equal("user@acme.test", resp.Author.Email)
}

func (s *NoteServiceTestSuite) TestGetByID_NotFound() {
	// Arrange
	ctx := s.identityCtx()
	s.mockNote.On("GetByID", ctx, "other-tenant-note").Return(nil, repository.ErrNotFound)

	// Act
	resp, err := s.service.GetByID(ctx, "other-tenant-note")

	// Assert
	s.ErrorIs(err, ErrNoteNotFound)
	s.Nil(resp)
}

func (s *NoteServiceTestSuite) TestUpdate_Success() {
	// Arrange
	ctx := s.identityCtx()
	existing := &domain.Note{
		ID:        "note1",
		TenantID:  "tenant1",
		UserID:    "user1",
		Title:     "Old title",
		Content:   "Old content",
		UpdatedAt: time.Now().Add(-time.Hour),
	}

	s.mockNote.On("GetByID", ctx, "note1").Return(existing, nil)
	s.mockNote.On("Update", ctx, mock.AnythingOfType("*domain.Note")).Return(nil)
	s.mockBroadcaster.On("BroadcastEvent", mock.AnythingOfType("*dto.NoteEvent")).Return()

	// Act
	resp, err := s.service.Update(ctx, "note1", dto.UpdateNoteRequest{Title: "New title"})

	// Assert
	s.NoError(err)
	s.Equal("New title", resp.Title)
	s.Equal("Old content", resp.Content)
	s.WithinDuration(time.Now(), resp.UpdatedAt, time.Minute)
	s.mockNote.AssertExpectations(s.T())
	s.mockBroadcaster.AssertExpectations(s.T())
}

func (s *NoteServiceTestSuite) TestUpdate_EmptyRequest() {
	// Arrange
	ctx := s.identityCtx()

	// Act
	resp, err := s.service.Update(ctx, "note1", dto.UpdateNoteRequest{})

	// Assert
	s.ErrorIs(err, ErrEmptyUpdate)
	s.Nil(resp)
	s.mockNote.AssertNotCalled(s.T(), "GetByID", mock.Anything, mock.Anything)
}

func (s *NoteServiceTestSuite) TestUpdate_NotFound() {
	// Arrange
	ctx := s.identityCtx()
	s.mockNote.On("GetByID", ctx, "missing").Return(nil, repository.ErrNotFound)

	// Act
	resp, err := s.service.Update(ctx, "missing", dto.UpdateNoteRequest{Title: "New"})

	// Assert
	s.ErrorIs(err, ErrNoteNotFound)
	s.Nil(resp)
}

func (s *NoteServiceTestSuite) TestDelete_Success() {
	// Arrange
	ctx := s.identityCtx()

	s.mockNote.On("Delete", ctx, "note1").Return(nil)
	s.mockBroadcaster.On("BroadcastEvent", mock.MatchedBy(func(event *dto.NoteEvent) bool {
		return event.Type == dto.NoteEventDeleted && event.NoteID == "note1" && event.TenantID == "tenant1"
	})).Return()

	// Act
	err := s.service.Delete(ctx, "note1")

	// Assert
	s.NoError(err)
	s.mockNote.AssertExpectations(s.T())
	s.mockBroadcaster.AssertExpectations(s.T())
}

func (s *NoteServiceTestSuite) TestDelete_NotFound() {
	// Arrange
	ctx := s.identityCtx()
	s.mockNote.On("Delete", ctx, "missing").Return(repository.ErrNotFound)

	// Act
	err := s.service.Delete(ctx, "missing")

	// Assert
	s.ErrorIs(err, ErrNoteNotFound)
	s.mockBroadcaster.AssertNotCalled(s.T(), "BroadcastEvent", mock.Anything)
}
