package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ledgerline/ledgerline/internal/apperrors"
	"github.com/ledgerline/ledgerline/internal/core/domain"
	portsrepo "github.com/ledgerline/ledgerline/internal/core/ports/repositories"
	portssvc "github.com/ledgerline/ledgerline/internal/core/ports/services"
	"github.com/ledgerline/ledgerline/internal/middleware"
)

// maxDecisionAttempts bounds how many invalid decisions the resolver will
// re-request before abandoning resolution for a record.
const maxDecisionAttempts = 3

// categoryResolver resolves (account, business, note) to a category and
// change type: history first, the decision capability as fallback.
type categoryResolver struct {
	recordRepo portsrepo.RecordReader
}

// NewCategoryResolver creates a new category resolver.
func NewCategoryResolver(recordRepo portsrepo.RecordReader) portssvc.CategoryResolverSvc {
	return &categoryResolver{recordRepo: recordRepo}
}

// Ensure categoryResolver implements the portssvc.CategoryResolverSvc interface
var _ portssvc.CategoryResolverSvc = (*categoryResolver)(nil)

// Resolve returns a deterministic result from history when this exact
// account/business/note combination has been categorized before. Otherwise it
// consults the decider, re-requesting on invalid answers; it never persists a
// guessed category.
func (s *categoryResolver) Resolve(ctx context.Context, accountID string, candidate domain.CanonicalRecord, decider portssvc.CategoryDecider) (domain.CategoryChoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	choice, err := s.recordRepo.FindCategoryForCounterparty(ctx, accountID, candidate.Business, candidate.Note)
	if err == nil {
		return *choice, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return domain.CategoryChoice{}, err
	}

	if decider == nil {
		return domain.CategoryChoice{}, fmt.Errorf("%w: no decision capability for %q", apperrors.ErrResolutionAbandoned, candidate.Business)
	}

	choices, err := s.recordRepo.ListDistinctCategories(ctx, accountID)
	if err != nil {
		return domain.CategoryChoice{}, err
	}

	prompt := portssvc.CategoryPrompt{
		AccountID:       accountID,
		Business:        candidate.Business,
		Note:            candidate.Note,
		Amount:          candidate.Amount,
		TransactionDate: candidate.TransactionDate,
		Choices:         choices,
	}

	for attempt := 1; attempt <= maxDecisionAttempts; attempt++ {
		decision, err := decider.Decide(ctx, prompt)
		if err != nil {
			return domain.CategoryChoice{}, fmt.Errorf("%w: decider failed for %q: %v", apperrors.ErrResolutionAbandoned, candidate.Business, err)
		}

		resolved, ok := validateDecision(decision, choices)
		if ok {
			return resolved, nil
		}
		logger.Warn("Invalid category decision, re-requesting",
			slog.String("business", candidate.Business),
			slog.Int("attempt", attempt),
			slog.Int("selected_index", decision.SelectedIndex),
		)
	}
	return domain.CategoryChoice{}, fmt.Errorf("%w: no valid decision for %q after %d attempts", apperrors.ErrResolutionAbandoned, candidate.Business, maxDecisionAttempts)
}

// validateDecision checks a decision against the offered choices. An index
// selects an existing pair; index zero introduces a new category, which must
// name a valid change type.
func validateDecision(decision portssvc.CategoryDecision, choices []domain.CategoryChoice) (domain.CategoryChoice, bool) {
	if decision.SelectedIndex > 0 {
		if decision.SelectedIndex > len(choices) {
			return domain.CategoryChoice{}, false
		}
		return choices[decision.SelectedIndex-1], true
	}
	if decision.SelectedIndex < 0 {
		return domain.CategoryChoice{}, false
	}
	if decision.NewCategory == "" || !decision.NewChangeType.IsValid() {
		return domain.CategoryChoice{}, false
	}
	return domain.CategoryChoice{Category: decision.NewCategory, ChangeType: decision.NewChangeType}, true
}
