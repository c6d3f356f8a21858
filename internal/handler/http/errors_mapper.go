package http

import (
	"errors"
	"net/http"

	"github.com/Harry2k21/house-finder-v1/internal/adapter"
	"github.com/Harry2k21/house-finder-v1/internal/logger"
	"github.com/Harry2k21/house-finder-v1/internal/scraper"
	"github.com/Harry2k21/house-finder-v1/internal/service"
	"github.com/Harry2k21/house-finder-v1/internal/store"
	"github.com/Harry2k21/house-finder-v1/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrPasswordsDoNotMatch:     http.StatusBadRequest,
	service.ErrPasswordTooShort:        http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNoURLProvided:           http.StatusBadRequest,
	service.ErrNoAddressProvided:       http.StatusBadRequest,
	service.ErrNoQuestionAsked:         http.StatusBadRequest,
	service.ErrMissingPayloadKey:       http.StatusBadRequest,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrNoPreferencesFound:    http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,

	scraper.ErrFetchFailed: http.StatusBadGateway,

	adapter.ErrAddressNotFound: http.StatusNotFound,
	adapter.ErrGeocodeFailed:   http.StatusBadGateway,
	adapter.ErrExpertFailed:    http.StatusBadGateway,
	adapter.ErrEmptyCompletion: http.StatusBadGateway,
}

// mapError resolves err to an HTTP status and a client-safe message. Known
// sentinels keep their own message; anything unmatched collapses to a plain
// 500 so internals do not leak into responses.
func mapError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err and writes the `{"error": msg}` envelope with the
// mapped status code.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := mapError(err)
	logger.FromRequest(r).Err(err).Int("status", status).Send()
	utils.WriteJSONError(w, message, status)
}
