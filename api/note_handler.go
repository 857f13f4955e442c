package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/stitchlog/backend/database"
	"github.com/stitchlog/backend/errs"
	"github.com/stitchlog/backend/models"
)

type noteHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	noteRepo    *database.NoteRepo
}

func newNoteHandler(projectRepo *database.ProjectRepo, noteRepo *database.NoteRepo) noteHandler {
	logger := log.With().Str("handlerName", "noteHandler").Logger()

	return noteHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		noteRepo:    noteRepo,
	}
}

// createNote adds a markdown note to a project's timeline
func (h noteHandler) createNote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectIDStr := chi.URLParam(r, "projectID")
		projectID, err := uuid.Parse(projectIDStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		var input database.NoteInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("note", err))
			return
		}
		if err := input.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewValidationError(err))
			return
		}

		note := models.Note{
			ID:        uuid.New(),
			ProjectID: projectID,
			Content:   input.Content,
			Photos:    datatypes.NewJSONSlice(input.Photos),
		}
		if err := h.noteRepo.Add(&note); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "note", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, note)
	}
}

// updateNote replaces a note's content and attached photo URLs
func (h noteHandler) updateNote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		noteID, ok := h.parseNoteID(w, r)
		if !ok {
			return
		}

		existing, err := h.noteRepo.FindByID(noteID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "note", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("note not found"))
			return
		}

		var input database.NoteInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("note", err))
			return
		}
		if err := input.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewValidationError(err))
			return
		}

		note, err := h.noteRepo.Update(noteID, input.Content, input.Photos)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "note", err))
			return
		}

		h.responder.WriteJSON(w, note)
	}
}

// deleteNote removes a note
func (h noteHandler) deleteNote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		noteID, ok := h.parseNoteID(w, r)
		if !ok {
			return
		}

		existing, err := h.noteRepo.FindByID(noteID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "note", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("note not found"))
			return
		}

		if err := h.noteRepo.Delete(noteID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "note", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "note deleted successfully",
		})
	}
}

func (h noteHandler) parseNoteID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	noteIDStr := chi.URLParam(r, "noteID")
	noteID, err := uuid.Parse(noteIDStr)
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid noteID"))
		return uuid.Nil, false
	}
	return noteID, true
}
