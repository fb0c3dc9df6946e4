package store

import (
	"context"
	"fmt"

	"github.com/Chakshu1409/fnp-integrations/internal/config"
	"github.com/Chakshu1409/fnp-integrations/internal/logger"
)

// Storages groups the repositories used by the service layer.
type Storages struct {
	DispatchRepository DispatchRepository

	// LedgerEnabled is false when no DSN is configured.
	LedgerEnabled bool

	db *DB
}

// NewStorages connects and migrates the ledger database named by cfg.DB.DSN.
// An empty DSN yields a no-op ledger.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Info().Msg("dispatch ledger disabled: no DSN configured")
		return &Storages{DispatchRepository: NewNoopDispatchRepository()}, nil
	}

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting ledger database: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating ledger database: %w", err)
	}

	log.Info().Str("dialect", string(db.Dialect())).Msg("dispatch ledger enabled")

	return &Storages{
		DispatchRepository: NewDispatchRepository(db, log),
		LedgerEnabled:      true,
		db:                 db,
	}, nil
}

// Close releases the ledger connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
