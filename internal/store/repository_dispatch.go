// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Chakshu1409/fnp-integrations/internal/logger"
	"github.com/Chakshu1409/fnp-integrations/models"
)

const dispatchRecordsTable = "dispatch_records"

var dispatchRecordColumns = []string{
	"id", "trace_id", "provider", "kind", "external_id", "quotation_id",
	"status", "total", "currency", "share_link", "created_at",
}

// dispatchRepository is the SQL implementation of [DispatchRepository]. It
// works with both PostgreSQL and SQLite; queries are built with squirrel
// using the placeholder format of the connection's dialect.
type dispatchRepository struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

// NewDispatchRepository constructs a [DispatchRepository] backed by db.
func NewDispatchRepository(db *DB, log *logger.Logger) DispatchRepository {
	log.Debug().Msg("creating dispatch repository")
	return &dispatchRepository{
		db:     db,
		now:    func() time.Time { return time.Now().UTC() },
		logger: log,
	}
}

// SaveDispatch inserts rec. A duplicate (kind, external_id) pair yields
// [ErrDispatchRecordAlreadyExists].
func (r *dispatchRepository) SaveDispatch(ctx context.Context, rec models.DispatchRecord) (models.DispatchRecord, error) {
	log := logger.FromContextOr(ctx, r.logger)

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = r.now()
	}

	query, args, err := r.db.builder().
		Insert(dispatchRecordsTable).
		Columns("trace_id", "provider", "kind", "external_id", "quotation_id",
			"status", "total", "currency", "share_link", "created_at").
		Values(rec.TraceID, rec.Provider, string(rec.Kind), rec.ExternalID, rec.QuotationID,
			rec.Status, rec.Total, rec.Currency, rec.ShareLink, rec.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.DispatchRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&rec.ID); err != nil {
		log.Err(err).Str("func", "*dispatchRepository.SaveDispatch").Msg("error inserting dispatch record")
		if isUniqueViolation(err) {
			return models.DispatchRecord{}, ErrDispatchRecordAlreadyExists
		}
		return models.DispatchRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return rec, nil
}

// FindByExternalID selects the record of kind with the provider ID externalID.
func (r *dispatchRepository) FindByExternalID(ctx context.Context, kind models.DispatchKind, externalID string) (models.DispatchRecord, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := r.db.builder().
		Select(dispatchRecordColumns...).
		From(dispatchRecordsTable).
		Where(sq.Eq{"kind": string(kind), "external_id": externalID}).
		Limit(1).
		ToSql()
	if err != nil {
		return models.DispatchRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		rec     models.DispatchRecord
		recKind string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&rec.ID, &rec.TraceID, &rec.Provider, &recKind, &rec.ExternalID, &rec.QuotationID,
		&rec.Status, &rec.Total, &rec.Currency, &rec.ShareLink, &rec.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DispatchRecord{}, ErrDispatchRecordNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*dispatchRepository.FindByExternalID").Msg("error selecting dispatch record")
		return models.DispatchRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	rec.Kind = models.DispatchKind(recKind)

	return rec, nil
}

// noopDispatchRepository is used when no ledger database is configured.
type noopDispatchRepository struct{}

// NewNoopDispatchRepository returns a [DispatchRepository] that stores nothing.
func NewNoopDispatchRepository() DispatchRepository {
	return noopDispatchRepository{}
}

func (noopDispatchRepository) SaveDispatch(_ context.Context, rec models.DispatchRecord) (models.DispatchRecord, error) {
	return rec, nil
}

func (noopDispatchRepository) FindByExternalID(context.Context, models.DispatchKind, string) (models.DispatchRecord, error) {
	return models.DispatchRecord{}, ErrLedgerDisabled
}
