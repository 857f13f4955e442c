package api

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/stitchlog/backend/database"
	"github.com/stitchlog/backend/errs"
	"github.com/stitchlog/backend/models"
	"github.com/stitchlog/backend/storage"
)

const maxPhotoUploadSize = 32 << 20 // 32MB

type photoHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	photoRepo   *database.PhotoRepo
	blobs       storage.Provider
}

func newPhotoHandler(projectRepo *database.ProjectRepo, photoRepo *database.PhotoRepo, blobs storage.Provider) photoHandler {
	logger := log.With().Str("handlerName", "photoHandler").Logger()

	return photoHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		photoRepo:   photoRepo,
		blobs:       blobs,
	}
}

// uploadPhoto stores the file in the blob store, then records it. If the
// record insert fails the uploaded blob is deleted again so the bucket does
// not accumulate orphans.
func (h photoHandler) uploadPhoto() http.HandlerFunc {
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

		if err := r.ParseMultipartForm(maxPhotoUploadSize); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart form", err))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		photoType := models.PhotoType(r.FormValue("photo_type"))
		if !models.ValidPhotoType(photoType) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("photo_type", "must be 'progress' or 'final'"))
			return
		}

		key := fmt.Sprintf("%s/%d%s", projectID, time.Now().UnixMilli(), filepath.Ext(header.Filename))
		contentType := header.Header.Get("Content-Type")

		url, err := h.blobs.Put(r.Context(), key, contentType, file)
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageUnavailableError("upload photo", "record", err))
			return
		}

		photo := models.Photo{
			ID:          uuid.New(),
			ProjectID:   projectID,
			StoragePath: url,
			PhotoType:   photoType,
			UploadedAt:  time.Now().UTC(),
		}
		if err := h.photoRepo.Add(&photo); err != nil {
			// compensate: a blob without its record is a consistency defect
			if delErr := h.blobs.Delete(r.Context(), key); delErr != nil {
				h.logger.Error().Err(delErr).Str("key", key).Msg("Failed to clean up blob after record insert failure")
				h.responder.WriteError(w, errs.NewBlobOrphanError("blob", key, err))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("create", "photo", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, photo)
	}
}

// deletePhoto removes the blob first and the record only after that
// succeeds: a surviving record can be retried, a silently orphaned blob
// cannot be found again.
func (h photoHandler) deletePhoto() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		photoIDStr := chi.URLParam(r, "photoID")
		photoID, err := uuid.Parse(photoIDStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid photoID"))
			return
		}

		photo, err := h.photoRepo.FindByID(photoID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "photo", err))
			return
		}
		if photo == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("photo not found"))
			return
		}

		key, err := h.blobs.Key(photo.StoragePath)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("photo record points outside the blob store", err))
			return
		}

		if err := h.blobs.Delete(r.Context(), key); err != nil {
			h.responder.WriteError(w, errs.NewStorageUnavailableError("delete photo blob", "record", err))
			return
		}

		if err := h.photoRepo.Delete(photoID); err != nil {
			h.responder.WriteError(w, errs.NewBlobOrphanError("record", photo.StoragePath, err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "photo deleted successfully",
		})
	}
}
