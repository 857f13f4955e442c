package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/stitchlog/backend/errs"
	"github.com/stitchlog/backend/services"
)

type patternHandler struct {
	responder Responder
	logger    zerolog.Logger
	catalog   *services.RavelryClient
}

func newPatternHandler(catalog *services.RavelryClient) patternHandler {
	logger := log.With().Str("handlerName", "patternHandler").Logger()

	return patternHandler{
		responder: NewResponder(logger),
		logger:    logger,
		catalog:   catalog,
	}
}

type patternLookupRequest struct {
	URL string `json:"url"`
}

// lookupPattern resolves a public Ravelry pattern URL to importable metadata.
// The frontend folds the result into a project create or update payload; this
// endpoint never writes anything itself.
func (h patternHandler) lookupPattern() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req patternLookupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("pattern lookup", err))
			return
		}
		if req.URL == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("url"))
			return
		}

		imported, err := h.catalog.LookupPattern(r.Context(), req.URL)
		if err != nil {
			h.responder.WriteError(w, h.mapLookupError(err))
			return
		}

		h.responder.WriteJSON(w, imported)
	}
}

// mapLookupError turns catalog sentinels into API errors.
func (h patternHandler) mapLookupError(err error) error {
	switch {
	case errors.Is(err, services.ErrCatalogNotConfigured):
		return errs.NewCatalogUnavailableError("ravelry API credentials not configured", err)
	case errors.Is(err, services.ErrInvalidPatternURL):
		return errs.NewInvalidFieldError("url", "is not a ravelry pattern URL")
	case errors.Is(err, services.ErrPatternNotFound):
		return errs.NewNotFoundError("pattern not found on ravelry")
	case errors.Is(err, services.ErrBadCredentials):
		return errs.NewApiErr(http.StatusBadGateway, "ravelry rejected the configured API credentials")
	default:
		return errs.NewInternalErrorWithCause("ravelry lookup failed", err)
	}
}
