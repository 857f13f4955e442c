package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/stitchlog/backend/database"
	"github.com/stitchlog/backend/errs"
	"github.com/stitchlog/backend/models"
)

type needleInventoryHandler struct {
	responder     Responder
	logger        zerolog.Logger
	inventoryRepo *database.NeedleInventoryRepo
}

func newNeedleInventoryHandler(inventoryRepo *database.NeedleInventoryRepo) needleInventoryHandler {
	logger := log.With().Str("handlerName", "needleInventoryHandler").Logger()

	return needleInventoryHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		inventoryRepo: inventoryRepo,
	}
}

// getInventory returns every owned-needle preset ordered by type, then size
func (h needleInventoryHandler) getInventory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		needles, err := h.inventoryRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "needle inventory", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"needles": needles,
			"total":   len(needles),
		})
	}
}

// addNeedle records a new owned-needle preset
func (h needleInventoryHandler) addNeedle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input database.NeedleInventoryInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("needle", err))
			return
		}
		if err := input.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewValidationError(err))
			return
		}

		needle := models.NeedleInventory{
			ID:     uuid.New(),
			Size:   input.Size,
			Type:   input.Type,
			Length: input.Length,
		}
		if err := h.inventoryRepo.Add(&needle); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "needle", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, needle)
	}
}

// deleteNeedle removes an owned-needle preset. Projects that copied the
// preset keep their own needle rows.
func (h needleInventoryHandler) deleteNeedle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		needleIDStr := chi.URLParam(r, "needleID")
		needleID, err := uuid.Parse(needleIDStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid needleID"))
			return
		}

		if err := h.inventoryRepo.Delete(needleID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "needle", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "needle deleted successfully",
		})
	}
}
