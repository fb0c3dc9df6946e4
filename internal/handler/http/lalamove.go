package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Chakshu1409/fnp-integrations/internal/app"
	"github.com/Chakshu1409/fnp-integrations/internal/logger"
	"github.com/Chakshu1409/fnp-integrations/internal/utils"
	"github.com/Chakshu1409/fnp-integrations/models"
)

func (h *Handler) getQuotation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.DeliveryRequestWrapper
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	resp, err := h.services.DeliveryService.GetQuotation(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Msg("quotation received from provider")
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.OrderRequestWrapper
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	resp, err := h.services.DeliveryService.PlaceOrder(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Msg("order placed with provider")
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	rec, err := h.services.DeliveryService.FindOrder(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessWithMessage(app.MsgOrderFound, rec), http.StatusOK)
}
