package http

import (
	"encoding/json"
	"net/http"

	"github.com/Harry2k21/house-finder-v1/internal/logger"
	"github.com/Harry2k21/house-finder-v1/internal/utils"
	"github.com/Harry2k21/house-finder-v1/models"
)

// geocode resolves the address in the request body to coordinates.
func (h *Handler) geocode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.GeocodeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	location, err := h.services.GeocodeService.Geocode(ctx, request.Address)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, location, http.StatusOK)
}
