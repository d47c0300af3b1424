package dto

import (
	"github.com/kingrain94/notes-api/internal/domain"
)

// FromTenant converts a Tenant domain model to a TenantResponse DTO
func FromTenant(tenant *domain.Tenant) TenantResponse {
	return TenantResponse{
		ID:   tenant.ID,
		Slug: tenant.Slug,
		Name: tenant.Name,
		Plan: string(tenant.Plan),
	}
}

// FromUser converts a User domain model (with tenant joined) to a UserResponse DTO
func FromUser(user *domain.User) UserResponse {
	resp := UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Role:  string(user.Role),
	}
	if user.Tenant != nil {
		resp.Tenant = FromTenant(user.Tenant)
	}
	return resp
}

// FromNote converts a Note domain model to a NoteResponse DTO
func FromNote(note *domain.Note) *NoteResponse {
	resp := &NoteResponse{
		ID:        note.ID,
		TenantID:  note.TenantID,
		UserID:    note.UserID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
	if note.User != nil {
		resp.Author = &NoteAuthor{
			ID:    note.User.ID,
			Email: note.User.Email,
		}
	}
	return resp
}

func FromNotes(notes []domain.Note) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i, note := range notes {
		responses[i] = *FromNote(&note)
	}
	return responses
}
