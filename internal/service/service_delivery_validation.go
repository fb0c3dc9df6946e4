package service

import (
	"context"
	"fmt"

	"github.com/Chakshu1409/fnp-integrations/internal/logger"
	"github.com/Chakshu1409/fnp-integrations/internal/validators"
	"github.com/Chakshu1409/fnp-integrations/models"
)

// DeliveryValidationService rejects malformed payloads with
// [ErrInvalidDataProvided] before they reach the wrapped service.
type DeliveryValidationService struct {
	inner     DeliveryService
	validator validators.Validator
}

func NewDeliveryValidationService() DeliveryServiceWrapper {
	return &DeliveryValidationService{
		validator: validators.NewDeliveryValidator(),
	}
}

// Wrap returns a copy of v decorating inner.
func (v *DeliveryValidationService) Wrap(inner DeliveryService) DeliveryService {
	return &DeliveryValidationService{
		inner:     inner,
		validator: v.validator,
	}
}

func (v *DeliveryValidationService) GetQuotation(ctx context.Context, req models.DeliveryRequestWrapper) (*models.QuotationResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Err(err).Msg("invalid quotation request")
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.GetQuotation(ctx, req)
}

func (v *DeliveryValidationService) PlaceOrder(ctx context.Context, req models.OrderRequestWrapper) (*models.OrderResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Err(err).Msg("invalid order request")
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.PlaceOrder(ctx, req)
}

func (v *DeliveryValidationService) FindOrder(ctx context.Context, orderID string) (models.DispatchRecord, error) {
	return v.inner.FindOrder(ctx, orderID)
}
