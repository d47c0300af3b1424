package dto

type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"admin@acme.test"`
	Password string `json:"password" binding:"required" example:"password"`
}

type CreateNoteRequest struct {
	Title   string `json:"title" binding:"required" example:"Standup notes"`
	Content string `json:"content" binding:"required" example:"Discussed the release plan"`
}

// UpdateNoteRequest is a partial update; at least one field must be
// non-empty, which the service enforces after authorization.
type UpdateNoteRequest struct {
	Title   string `json:"title" example:"Standup notes"`
	Content string `json:"content" example:"Discussed the release plan"`
}
