package services

import (
	"context"
	"time"

	"github.com/ledgerline/ledgerline/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryPrompt carries everything a decider needs to classify one
// candidate record: the counterparty details plus the account's known
// (category, change type) pairs.
type CategoryPrompt struct {
	AccountID       string
	Business        string
	Note            string
	Amount          decimal.Decimal
	TransactionDate time.Time
	Choices         []domain.CategoryChoice
}

// CategoryDecision is a decider's answer to a prompt. SelectedIndex is the
// 1-based position in the prompt's choices; zero introduces a new category,
// in which case NewCategory and NewChangeType must be set.
type CategoryDecision struct {
	SelectedIndex int
	NewCategory   string
	NewChangeType domain.RecordChangeType
}

// CategoryDecider answers classification prompts. Implementations may block
// on a human or consult a rule table.
type CategoryDecider interface {
	Decide(ctx context.Context, prompt CategoryPrompt) (CategoryDecision, error)
}

// CategoryResolverSvc assigns a category and change type to a candidate
// record: deterministic from history when the counterparty was seen before,
// decider-driven otherwise.
type CategoryResolverSvc interface {
	// Resolve returns the category choice for the candidate. It fails with
	// apperrors.ErrResolutionAbandoned when no valid decision can be obtained.
	Resolve(ctx context.Context, accountID string, candidate domain.CanonicalRecord, decider CategoryDecider) (domain.CategoryChoice, error)
}
