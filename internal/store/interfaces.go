package store

import (
	"context"

	"github.com/Chakshu1409/fnp-integrations/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DispatchRepository persists successful provider calls.
type DispatchRepository interface {
	// SaveDispatch stores rec and returns it with ID and CreatedAt set.
	SaveDispatch(ctx context.Context, rec models.DispatchRecord) (models.DispatchRecord, error)
	// FindByExternalID returns the record of kind with the given provider ID
	// or ErrDispatchRecordNotFound.
	FindByExternalID(ctx context.Context, kind models.DispatchKind, externalID string) (models.DispatchRecord, error)
}
