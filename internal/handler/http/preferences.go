package http

import (
	"io"
	"net/http"

	"github.com/Harry2k21/house-finder-v1/internal/logger"
	"github.com/Harry2k21/house-finder-v1/internal/utils"
	"github.com/Harry2k21/house-finder-v1/models"
)

// getPreferences returns a handler that reads the user's document of the
// given kind. The response body is the stored document itself, unwrapped:
// saving {"requirements": [...]} and reading it back yields [...].
func (h *Handler) getPreferences(kind models.PreferenceKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := utils.GetUserIDFromContext(ctx)
		if !ok {
			utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		content, err := h.services.PreferenceService.GetPreferences(ctx, userID, kind)
		if err != nil {
			writeError(w, r, err)
			return
		}

		utils.WriteJSON(w, content, http.StatusOK)
	}
}

// savePreferences returns a handler that replaces the user's document of the
// given kind wholesale with the request body's content.
func (h *Handler) savePreferences(kind models.PreferenceKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		userID, ok := utils.GetUserIDFromContext(ctx)
		if !ok {
			utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		payload, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Msg("reading request body failed")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if err := h.services.PreferenceService.SavePreferences(ctx, userID, kind, payload); err != nil {
			writeError(w, r, err)
			return
		}

		utils.WriteJSON(w, models.SaveAck{Success: true}, http.StatusOK)
	}
}
