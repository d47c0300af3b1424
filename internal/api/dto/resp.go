package dto

import (
	"time"
)

// TenantResponse represents a tenant in API responses
type TenantResponse struct {
	ID   string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Slug string `json:"slug" example:"acme"`
	Name string `json:"name" example:"Acme Corporation"`
	Plan string `json:"subscription_plan" example:"FREE"`
}

// UserResponse represents a user in API responses, password hash excluded
type UserResponse struct {
	ID     string         `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Email  string         `json:"email" example:"admin@acme.test"`
	Role   string         `json:"role" example:"ADMIN"`
	Tenant TenantResponse `json:"tenant"`
}

// LoginResponse carries the signed token plus a view of the caller
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NoteAuthor is the trimmed author view embedded in note responses
type NoteAuthor struct {
	ID    string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Email string `json:"email" example:"user@acme.test"`
}

// NoteResponse represents a single note in API responses
type NoteResponse struct {
	ID        string      `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	TenantID  string      `json:"tenant_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID    string      `json:"user_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Title     string      `json:"title" example:"Standup notes"`
	Content   string      `json:"content" example:"Discussed the release plan"`
	Author    *NoteAuthor `json:"user,omitempty"`
	CreatedAt time.Time   `json:"created_at" example:"2025-07-17T21:20:48Z"`
	UpdatedAt time.Time   `json:"updated_at" example:"2025-07-17T21:20:48Z"`
}

// UpgradeTenantResponse confirms a subscription upgrade
type UpgradeTenantResponse struct {
	Message string         `json:"message" example:"Subscription upgraded successfully"`
	Tenant  TenantResponse `json:"tenant"`
}

// Note event types pushed over the live stream
const (
	NoteEventCreated = "note.created"
	NoteEventUpdated = "note.updated"
	NoteEventDeleted = "note.deleted"
)

// NoteEvent is broadcast to websocket clients of the owning tenant
type NoteEvent struct {
	Type     string        `json:"type" example:"note.created"`
	TenantID string        `json:"tenant_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Note     *NoteResponse `json:"note,omitempty"`
	NoteID   string        `json:"note_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}
