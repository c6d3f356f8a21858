package http

import (
	"encoding/json"
	"net/http"

	"github.com/Harry2k21/house-finder-v1/internal/logger"
	"github.com/Harry2k21/house-finder-v1/internal/utils"
	"github.com/Harry2k21/house-finder-v1/models"
)

// askExpert forwards the question in the request body to the advice model and
// returns its answer. This route is deliberately unauthenticated.
func (h *Handler) askExpert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.ExpertRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	answer, err := h.services.ExpertService.AskExpert(ctx, request.Question)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ExpertResponse{Answer: answer}, http.StatusOK)
}
