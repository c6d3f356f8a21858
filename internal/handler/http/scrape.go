package http

import (
	"net/http"

	"github.com/Harry2k21/house-finder-v1/internal/utils"
)

// scrape fetches the results count of the listing page given in the `url`
// query parameter, records it under today's date, and returns the figure
// alongside the user's refreshed history.
func (h *Handler) scrape(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	pageURL := r.URL.Query().Get("url")

	response, err := h.services.ScrapeService.ScrapeAndRecord(ctx, userID, pageURL)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

// history returns the user's full scrape ledger, newest date first. The
// response body is the bare array of entries.
func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	history, err := h.services.HistoryService.GetHistory(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, history, http.StatusOK)
}
