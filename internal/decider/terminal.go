// Package decider provides CategoryDecider implementations: the interactive
// terminal prompt used by the CLI and a rule table for non-interactive runs.
package decider

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ledgerline/ledgerline/internal/core/domain"
	portssvc "github.com/ledgerline/ledgerline/internal/core/ports/services"
)

// TerminalDecider prompts a human on a terminal to categorize a candidate
// record. Invalid input is re-prompted locally, so the decision returned to
// the resolver is always well-formed.
type TerminalDecider struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewTerminalDecider creates a decider reading selections from in and
// writing prompts to out.
func NewTerminalDecider(in io.Reader, out io.Writer) *TerminalDecider {
	return &TerminalDecider{in: bufio.NewScanner(in), out: out}
}

// Ensure TerminalDecider implements the portssvc.CategoryDecider interface
var _ portssvc.CategoryDecider = (*TerminalDecider)(nil)

// Decide presents the account's known (category, change type) pairs and the
// candidate record, then reads a selection. Entering 0 switches to naming a
// new category and picking a change type. Blocks until the human answers;
// an exhausted input stream abandons the decision.
func (d *TerminalDecider) Decide(ctx context.Context, prompt portssvc.CategoryPrompt) (portssvc.CategoryDecision, error) {
	for {
		for i, choice := range prompt.Choices {
			fmt.Fprintf(d.out, "%d: %s - %s\n", i+1, choice.Category, choice.ChangeType.Label())
		}
		fmt.Fprintln(d.out, "0: Create new category")
		fmt.Fprintf(d.out, "%s $%s: %s - %s\n",
			prompt.TransactionDate.Format(domain.DateFormat),
			prompt.Amount.StringFixed(2),
			prompt.Business,
			prompt.Note,
		)

		selection, err := d.readInt("Select category - ")
		if err != nil {
			return portssvc.CategoryDecision{}, err
		}
		if selection > 0 && selection <= len(prompt.Choices) {
			return portssvc.CategoryDecision{SelectedIndex: selection}, nil
		}
		if selection == 0 {
			return d.decideNewCategory()
		}
		fmt.Fprintln(d.out, "That is not a valid selection")
	}
}

func (d *TerminalDecider) decideNewCategory() (portssvc.CategoryDecision, error) {
	for {
		fmt.Fprint(d.out, "What is the new category name? - ")
		if !d.in.Scan() {
			return portssvc.CategoryDecision{}, fmt.Errorf("input closed: %w", scanErr(d.in))
		}
		category := strings.TrimSpace(d.in.Text())
		if category == "" {
			fmt.Fprintln(d.out, "That is not a valid selection")
			continue
		}

		changeTypes := domain.RecordChangeTypes()
		for i, changeType := range changeTypes {
			fmt.Fprintf(d.out, "%d: %s\n", i+1, changeType.Label())
		}
		selection, err := d.readInt("Select change type - ")
		if err != nil {
			return portssvc.CategoryDecision{}, err
		}
		if selection < 1 || selection > len(changeTypes) {
			fmt.Fprintln(d.out, "That is not a valid selection")
			continue
		}
		return portssvc.CategoryDecision{
			NewCategory:   category,
			NewChangeType: changeTypes[selection-1],
		}, nil
	}
}

func (d *TerminalDecider) readInt(promptText string) (int, error) {
	for {
		fmt.Fprint(d.out, promptText)
		if !d.in.Scan() {
			return 0, fmt.Errorf("input closed: %w", scanErr(d.in))
		}
		n, err := strconv.Atoi(strings.TrimSpace(d.in.Text()))
		if err != nil {
			fmt.Fprintln(d.out, "That is not a valid selection")
			continue
		}
		return n, nil
	}
}

func scanErr(s *bufio.Scanner) error {
	if err := s.Err(); err != nil {
		return err
	}
	return io.EOF
}
