package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyData            = errors.New("data is required")
	ErrEmptyServiceType     = errors.New("serviceType is required")
	ErrNotEnoughStops       = errors.New("at least two stops are required")
	ErrInvalidCoordinates   = errors.New("stop coordinates are invalid")
	ErrEmptyQuotationID     = errors.New("quotationId is required")
	ErrEmptySender          = errors.New("sender with stopId is required")
	ErrEmptyRecipients      = errors.New("at least one recipient is required")
	ErrEmptyRecipientStopID = errors.New("recipient stopId is required")
	ErrInvalidScheduleAt    = errors.New("scheduleAt must be an RFC 3339 time")
)
