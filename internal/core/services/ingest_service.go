package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ledgerline/ledgerline/internal/apperrors"
	"github.com/ledgerline/ledgerline/internal/core/domain"
	portsrepo "github.com/ledgerline/ledgerline/internal/core/ports/repositories"
	portssvc "github.com/ledgerline/ledgerline/internal/core/ports/services"
	"github.com/ledgerline/ledgerline/internal/dto"
	"github.com/ledgerline/ledgerline/internal/middleware"
	"github.com/ledgerline/ledgerline/internal/utils/accounting"
)

// ingestionService runs parsed statement batches through categorization,
// dedup and persistence. Each record moves through
// Unresolved -> Categorized -> Deduplicated(exists|new) -> Persisted.
type ingestionService struct {
	accountRepo portsrepo.AccountReader
	recordRepo  portsrepo.RecordRepositoryFacade
	resolver    portssvc.CategoryResolverSvc
}

// NewIngestionService creates a new ingestion service.
func NewIngestionService(accountRepo portsrepo.AccountReader, recordRepo portsrepo.RecordRepositoryFacade, resolver portssvc.CategoryResolverSvc) portssvc.IngestionSvcFacade {
	return &ingestionService{
		accountRepo: accountRepo,
		recordRepo:  recordRepo,
		resolver:    resolver,
	}
}

// Ensure ingestionService implements the portssvc.IngestionSvcFacade interface
var _ portssvc.IngestionSvcFacade = (*ingestionService)(nil)

// ProcessBatch ingests a parser-ordered batch for one account. Parsers emit
// statement lines newest-first, so the batch is walked in reverse: earlier
// transactions land first and seed the category history for later ones.
//
// An abandoned resolution or a persistence failure aborts the batch with the
// partial summary; a record-level fault (unsupported change type, liability
// stub) fails that record only and the batch continues.
func (s *ingestionService) ProcessBatch(ctx context.Context, accountID string, batch []domain.CanonicalRecord, decider portssvc.CategoryDecider) (*dto.IngestSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	summary := &dto.IngestSummary{Parsed: len(batch)}

	for i := len(batch) - 1; i >= 0; i-- {
		candidate := batch[i]
		err := s.processOne(ctx, accountID, candidate, decider, summary)
		if err == nil {
			continue
		}
		if errors.Is(err, apperrors.ErrUnsupportedChangeType) || errors.Is(err, apperrors.ErrNotImplemented) {
			summary.Failed++
			logger.Error("Record failed, continuing batch",
				slog.String("business", candidate.Business),
				slog.String("date", candidate.TransactionDate.Format(domain.DateFormat)),
				slog.String("error", err.Error()),
			)
			continue
		}
		// Resolution abandoned or the store is misbehaving: stop here rather
		// than reorder later records ahead of an unresolved one.
		return summary, err
	}

	logger.Info("Batch ingested",
		slog.String("account_id", accountID),
		slog.Int("parsed", summary.Parsed),
		slog.Int("inserted", summary.Inserted),
		slog.Int("duplicates", summary.Duplicates),
		slog.Int("failed", summary.Failed),
	)
	return summary, nil
}

func (s *ingestionService) processOne(ctx context.Context, accountID string, candidate domain.CanonicalRecord, decider portssvc.CategoryDecider, summary *dto.IngestSummary) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Unresolved -> Categorized. A record is never persisted with a guessed
	// category.
	choice, err := s.resolver.Resolve(ctx, accountID, candidate, decider)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	record := domain.Record{
		AccountID:       accountID,
		Amount:          candidate.Amount,
		Business:        candidate.Business,
		Category:        choice.Category,
		ChangeType:      choice.ChangeType,
		Note:            candidate.Note,
		TransactionDate: truncateToDate(candidate.TransactionDate),
		AuditFields:     domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	// An asset leg only survives a decision that actually trades or re-prices
	// the holding. A cash-typed decision on an asset-bearing line (a dividend
	// paid to the sweep account, say) must not touch the position.
	assetLeg := candidate.Asset
	if assetLeg != nil && !choice.ChangeType.AffectsAsset() {
		assetLeg = nil
	}
	if assetLeg != nil {
		quantityDelta, err := accounting.QuantityDelta(assetLeg.Quantity, choice.ChangeType)
		if err != nil {
			return err
		}
		record.Quantity = &quantityDelta
	}

	// Categorized -> Deduplicated. A natural-key hit means this statement
	// line was ingested before: no re-insert, no balance propagation.
	existingID, err := s.recordRepo.FindRecordIDByKey(ctx, record.NaturalKey())
	if err == nil {
		summary.Duplicates++
		logger.Debug("Duplicate record skipped",
			slog.String("record_id", existingID),
			slog.String("business", record.Business),
		)
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	// Deduplicated(new) -> Persisted.
	saved, err := s.recordRepo.SaveRecord(ctx, record, assetLeg, nil)
	if err != nil {
		return err
	}
	summary.Inserted++
	logger.Debug("Record persisted",
		slog.String("record_id", saved.RecordID),
		slog.String("business", saved.Business),
		slog.String("change_type", string(saved.ChangeType)),
	)
	return nil
}

// truncateToDate drops the time-of-day portion so the natural key compares
// calendar dates only.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
