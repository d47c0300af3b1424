package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/notes-api/internal/api/dto"
)

//go:generate mockery --name NoteService --output ../mocks
type NoteService interface {
	List(ctx context.Context) ([]dto.NoteResponse, error)
	Create(ctx context.Context, req dto.CreateNoteRequest) (*dto.NoteResponse, error)
	GetByID(ctx context.Context, id string) (*dto.NoteResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, id string) error
}

type NoteHandler struct {
	*BaseHandler
	service NoteService
}

func NewNoteHandler(service NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

// ListNotes godoc
// @Summary List notes
// @Description List the caller's tenant notes, newest first
// @Tags    notes
// @Produce json
// @Success 200 {array} dto.NoteResponse
// @Failure 401 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router  /notes [get]
func (h *NoteHandler) ListNotes(c *gin.Context) {
	notes, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notes)
}

// CreateNote godoc
// @Summary Create note
// @Description Create a note in the caller's tenant, subject to the plan's note quota
// @Tags    notes
// @Accept  json
// @Produce json
// @Param   body body dto.CreateNoteRequest true "Note object"
// @Success 201 {object} dto.NoteResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router  /notes [post]
func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Title and content are required"})
		return
	}

	note, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, note)
}

// GetNote godoc
// @Summary Get note
// @Description Get a note by ID; notes of other tenants are reported as not found
// @Tags    notes
// @Produce json
// @Param   id path string true "Note ID"
// @Success 200 {object} dto.NoteResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router  /notes/{id} [get]
func (h *NoteHandler) GetNote(c *gin.Context) {
	note, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, note)
}

// UpdateNote godoc
// @Summary Update note
// @Description Partially update a note's title and/or content
// @Tags    notes
// @Accept  json
// @Produce json
// @Param   id path string true "Note ID"
// @Param   body body dto.UpdateNoteRequest true "Fields to update"
// @Success 200 {object} dto.NoteResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router  /notes/{id} [put]
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Invalid request body"})
		return
	}

	note, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, note)
}

// DeleteNote godoc
// @Summary Delete note
// @Description Delete a note by ID
// @Tags    notes
// @Param   id path string true "Note ID"
// @Success 204
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router  /notes/{id} [delete]
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
