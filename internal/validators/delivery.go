package validators

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/Chakshu1409/fnp-integrations/models"
)

// Field names accepted by [DeliveryValidator.Validate].
const (
	FieldData        = "data"
	FieldServiceType = "service_type"
	FieldStops       = "stops"
	FieldScheduleAt  = "schedule_at"
	FieldQuotationID = "quotation_id"
	FieldSender      = "sender"
	FieldRecipients  = "recipients"
)

// MinStops is the pickup plus at least one drop-off.
const MinStops = 2

var (
	defaultQuotationFields = []string{FieldData, FieldServiceType, FieldStops, FieldScheduleAt}
	defaultOrderFields     = []string{FieldData, FieldQuotationID, FieldSender, FieldRecipients}
)

// DeliveryValidator validates quotation and order wrappers.
type DeliveryValidator struct{}

// NewDeliveryValidator returns a [Validator] for delivery payloads.
func NewDeliveryValidator() Validator {
	return &DeliveryValidator{}
}

// Validate accepts models.DeliveryRequestWrapper and models.OrderRequestWrapper
// (by value or pointer). Any other type yields [ErrUnsupportedType].
func (v *DeliveryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.DeliveryRequestWrapper:
		return v.validateQuotation(value, fields...)
	case *models.DeliveryRequestWrapper:
		if value == nil {
			return ErrEmptyData
		}
		return v.validateQuotation(*value, fields...)
	case models.OrderRequestWrapper:
		return v.validateOrder(value, fields...)
	case *models.OrderRequestWrapper:
		if value == nil {
			return ErrEmptyData
		}
		return v.validateOrder(*value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *DeliveryValidator) validateQuotation(w models.DeliveryRequestWrapper, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultQuotationFields
	}
	if w.Data == nil {
		return ErrEmptyData
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldData:
		case FieldServiceType:
			if w.Data.ServiceType == "" {
				err = ErrEmptyServiceType
			}
		case FieldStops:
			err = validateStops(w.Data.Stops)
		case FieldScheduleAt:
			if w.Data.ScheduleAt != "" {
				if _, parseErr := time.Parse(time.RFC3339, w.Data.ScheduleAt); parseErr != nil {
					err = ErrInvalidScheduleAt
				}
			}
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateStops(stops []models.DeliveryStop) error {
	if len(stops) < MinStops {
		return ErrNotEnoughStops
	}
	for i, stop := range stops {
		if stop.Coordinates == nil {
			return fmt.Errorf("%w: stop %d has no coordinates", ErrInvalidCoordinates, i)
		}
		if err := validateDegrees(stop.Coordinates.Lat, 90); err != nil {
			return fmt.Errorf("%w: stop %d lat: %w", ErrInvalidCoordinates, i, err)
		}
		if err := validateDegrees(stop.Coordinates.Lng, 180); err != nil {
			return fmt.Errorf("%w: stop %d lng: %w", ErrInvalidCoordinates, i, err)
		}
	}
	return nil
}

// decimalDegrees matches plain decimal notation such as "-22.3354". It
// excludes NaN, Inf, exponents and hex floats that ParseFloat would accept.
var decimalDegrees = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

func validateDegrees(value string, limit float64) error {
	if !decimalDegrees.MatchString(value) {
		return fmt.Errorf("%q is not a decimal number", value)
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}
	if f < -limit || f > limit {
		return fmt.Errorf("%s out of range", value)
	}
	return nil
}

func (v *DeliveryValidator) validateOrder(w models.OrderRequestWrapper, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultOrderFields
	}
	if w.Data == nil {
		return ErrEmptyData
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldData:
		case FieldQuotationID:
			if w.Data.QuotationID == "" {
				err = ErrEmptyQuotationID
			}
		case FieldSender:
			if w.Data.Sender == nil || w.Data.Sender.StopID == "" {
				err = ErrEmptySender
			}
		case FieldRecipients:
			if len(w.Data.Recipients) == 0 {
				err = ErrEmptyRecipients
				break
			}
			for i, r := range w.Data.Recipients {
				if r.StopID == "" {
					err = fmt.Errorf("%w: recipient %d", ErrEmptyRecipientStopID, i)
					break
				}
			}
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
