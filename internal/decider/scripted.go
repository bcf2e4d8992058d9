package decider

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledgerline/ledgerline/internal/core/domain"
	portssvc "github.com/ledgerline/ledgerline/internal/core/ports/services"
	"github.com/ledgerline/ledgerline/internal/dto"
)

// ScriptedDecider resolves candidates from a pre-supplied rule table. It
// backs the non-interactive HTTP ingest path: a candidate with no matching
// rule abandons resolution instead of guessing.
type ScriptedDecider struct {
	rules []dto.CategoryRule
}

// NewScriptedDecider creates a decider from the given rules.
func NewScriptedDecider(rules []dto.CategoryRule) *ScriptedDecider {
	return &ScriptedDecider{rules: rules}
}

// Ensure ScriptedDecider implements the portssvc.CategoryDecider interface
var _ portssvc.CategoryDecider = (*ScriptedDecider)(nil)

// Decide matches the candidate's business against the rule table,
// case-insensitively, first rule wins.
func (d *ScriptedDecider) Decide(ctx context.Context, prompt portssvc.CategoryPrompt) (portssvc.CategoryDecision, error) {
	business := strings.ToLower(prompt.Business)
	for _, rule := range d.rules {
		if strings.Contains(business, strings.ToLower(rule.BusinessContains)) {
			return portssvc.CategoryDecision{
				NewCategory:   rule.Category,
				NewChangeType: domain.RecordChangeType(rule.ChangeType),
			}, nil
		}
	}
	return portssvc.CategoryDecision{}, fmt.Errorf("no rule matches business %q", prompt.Business)
}
