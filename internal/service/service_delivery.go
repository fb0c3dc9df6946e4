// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Chakshu1409/fnp-integrations/internal/adapter"
	"github.com/Chakshu1409/fnp-integrations/internal/logger"
	"github.com/Chakshu1409/fnp-integrations/internal/store"
	"github.com/Chakshu1409/fnp-integrations/internal/utils"
	"github.com/Chakshu1409/fnp-integrations/models"
)

type deliveryService struct {
	provider adapter.DeliveryProvider
	ledger   store.DispatchRepository

	logger *logger.Logger
}

// NewDeliveryService returns a [DeliveryService] forwarding to provider and
// recording successful dispatches in ledger.
func NewDeliveryService(provider adapter.DeliveryProvider, ledger store.DispatchRepository, logger *logger.Logger) DeliveryService {
	return &deliveryService{
		provider: provider,
		ledger:   ledger,
		logger:   logger,
	}
}

func (s *deliveryService) GetQuotation(ctx context.Context, req models.DeliveryRequestWrapper) (*models.QuotationResponse, error) {
	resp, err := s.provider.GetQuotation(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp != nil && resp.Data != nil {
		rec := models.DispatchRecord{
			Kind:        models.DispatchKindQuotation,
			ExternalID:  resp.Data.QuotationID,
			QuotationID: resp.Data.QuotationID,
		}
		setPrice(&rec, resp.Data.PriceBreakdown)
		s.record(ctx, rec)
	}

	return resp, nil
}

func (s *deliveryService) PlaceOrder(ctx context.Context, req models.OrderRequestWrapper) (*models.OrderResponse, error) {
	resp, err := s.provider.PlaceOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp != nil && resp.Data != nil {
		rec := models.DispatchRecord{
			Kind:        models.DispatchKindOrder,
			ExternalID:  resp.Data.OrderID,
			QuotationID: resp.Data.QuotationID,
			Status:      resp.Data.Status,
			ShareLink:   resp.Data.ShareLink,
		}
		setPrice(&rec, resp.Data.PriceBreakdown)
		s.record(ctx, rec)
	}

	return resp, nil
}

func (s *deliveryService) FindOrder(ctx context.Context, orderID string) (models.DispatchRecord, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return models.DispatchRecord{}, ErrInvalidDataProvided
	}

	rec, err := s.ledger.FindByExternalID(ctx, models.DispatchKindOrder, orderID)
	if err != nil {
		return models.DispatchRecord{}, fmt.Errorf("order %s lookup failed: %w", orderID, err)
	}

	return rec, nil
}

// record writes rec to the ledger. Ledger failures never fail the dispatch.
func (s *deliveryService) record(ctx context.Context, rec models.DispatchRecord) {
	log := logger.FromContextOr(ctx, s.logger)

	if rec.ExternalID == "" {
		log.Warn().Str("kind", string(rec.Kind)).Msg("provider returned no id, dispatch not recorded")
		return
	}

	rec.Provider = s.provider.Name()
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		rec.TraceID = traceID
	}

	if _, err := s.ledger.SaveDispatch(ctx, rec); err != nil {
		if errors.Is(err, store.ErrDispatchRecordAlreadyExists) {
			log.Warn().Str("external_id", rec.ExternalID).Msg("dispatch already recorded")
			return
		}
		log.Err(err).Str("external_id", rec.ExternalID).Msg("error recording dispatch")
	}
}

func setPrice(rec *models.DispatchRecord, price *models.PriceBreakdown) {
	if price == nil {
		return
	}
	rec.Total = price.Total
	rec.Currency = price.Currency
}
