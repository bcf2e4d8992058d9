package services

import (
	"context"

	"github.com/ledgerline/ledgerline/internal/core/domain"
	"github.com/ledgerline/ledgerline/internal/dto"
)

// IngestionSvcFacade runs parsed statement batches through categorization,
// dedup and persistence.
type IngestionSvcFacade interface {
	// ProcessBatch walks batch from its oldest entry to its newest, resolving
	// a category for each record and persisting the ones not already present.
	// Records with unsupported or unimplemented change types are counted as
	// failed and skipped; an abandoned resolution or a persistence failure
	// stops the batch and returns the partial summary alongside the error.
	ProcessBatch(ctx context.Context, accountID string, batch []domain.CanonicalRecord, decider CategoryDecider) (*dto.IngestSummary, error)
}
