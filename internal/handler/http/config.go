package http

import (
	"encoding/json"
	"net/http"

	"github.com/Chakshu1409/fnp-integrations/internal/app"
	"github.com/Chakshu1409/fnp-integrations/internal/logger"
	"github.com/Chakshu1409/fnp-integrations/internal/utils"
	"github.com/Chakshu1409/fnp-integrations/models"
)

const defaultTestEndpoint = "/test"

func (h *Handler) getConfigInfo(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetAppInfo(r.Context())
	utils.WriteJSON(w, models.SuccessWithMessage(app.MsgConfigInfoRetrieved, info), http.StatusOK)
}

func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	health := h.services.AppInfoService.GetHealth(r.Context())
	utils.WriteJSON(w, models.SuccessWithMessage(app.MsgApplicationHealthy, health), http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// testRestClient performs a safe GET of ?endpoint= (default "/test") against
// the external API and reports the result.
func (h *Handler) testRestClient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	endpoint := r.URL.Query().Get("endpoint")
	if endpoint == "" {
		endpoint = defaultTestEndpoint
	}

	api := h.services.ExternalAPIService
	result, err := api.GetSafe(r.Context(), endpoint)
	if err != nil {
		log.Err(err).Str("endpoint", endpoint).Msg(app.MsgRESTClientTestFailed)
		envelope := models.Error(http.StatusInternalServerError, http.StatusInternalServerError,
			app.MsgRESTClientTestFailed, r.URL.Path, map[string]any{
				"error":    err.Error(),
				"endpoint": endpoint,
			})
		utils.WriteJSON(w, envelope, http.StatusInternalServerError)
		return
	}

	var rendered any
	if result != nil {
		rendered = json.RawMessage(result)
	}

	utils.WriteJSON(w, models.SuccessWithMessage(app.MsgRESTClientTestSucceeded, map[string]any{
		"endpoint":   endpoint,
		"result":     rendered,
		"apiBaseUrl": api.BaseURL(),
	}), http.StatusOK)
}
