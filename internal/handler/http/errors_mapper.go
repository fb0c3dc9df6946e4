package http

import (
	"errors"
	"net/http"

	"github.com/Chakshu1409/fnp-integrations/internal/logger"
	"github.com/Chakshu1409/fnp-integrations/internal/restclient"
	"github.com/Chakshu1409/fnp-integrations/internal/service"
	"github.com/Chakshu1409/fnp-integrations/internal/store"
	"github.com/Chakshu1409/fnp-integrations/internal/utils"
	"github.com/Chakshu1409/fnp-integrations/models"
)

// errorStatusMap lists errors rendered with their own message. Anything not
// listed and not a *restclient.ResponseError is a generic 500.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	ErrInvalidJSON:                 http.StatusBadRequest,

	ErrEmptyAuthorizationHeader:        http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	ErrRouteNotFound:                http.StatusNotFound,
	store.ErrDispatchRecordNotFound: http.StatusNotFound,
	store.ErrLedgerDisabled:         http.StatusNotFound,

	ErrMethodNotAllowed: http.StatusMethodNotAllowed,

	service.ErrExternalAPINotConfigured: http.StatusServiceUnavailable,
}

func statusFromError(err error) (int, bool) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, true
		}
	}
	return http.StatusInternalServerError, false
}

// errorEnvelope maps err to the rendered status and envelope.
//
// A classified provider failure keeps its category code and upstream message;
// known gateway errors keep their message; everything else is reported as a
// generic "Internal Server Error".
func errorEnvelope(err error, path string) (int, models.ResponseEnvelope) {
	if re, ok := restclient.AsResponseError(err); ok {
		return re.Code, models.Error(re.Code, re.Code, re.Message, path, nil)
	}

	status, known := statusFromError(err)
	message := http.StatusText(status)
	if known {
		message = err.Error()
	}

	return status, models.Error(status, status, message, path, nil)
}

// writeError logs err and renders it as an error envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, envelope := errorEnvelope(err, r.URL.Path)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, envelope, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error envelope")
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}
