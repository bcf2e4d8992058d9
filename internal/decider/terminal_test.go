package decider_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ledgerline/ledgerline/internal/core/domain"
	portssvc "github.com/ledgerline/ledgerline/internal/core/ports/services"
	"github.com/ledgerline/ledgerline/internal/decider"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPrompt() portssvc.CategoryPrompt {
	return portssvc.CategoryPrompt{
		AccountID:       "acc-1",
		Business:        "WINCO",
		Note:            "POS Debit",
		Amount:          decimal.NewFromFloat(42.17),
		TransactionDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Choices: []domain.CategoryChoice{
			{Category: "Groceries", ChangeType: domain.CreditAccount},
			{Category: "Paycheck", ChangeType: domain.DebitAccount},
		},
	}
}

func TestTerminalDecider_SelectExistingChoice(t *testing.T) {
	var out bytes.Buffer
	d := decider.NewTerminalDecider(strings.NewReader("2\n"), &out)

	decision, err := d.Decide(context.Background(), testPrompt())

	require.NoError(t, err)
	assert.Equal(t, 2, decision.SelectedIndex)
	assert.Contains(t, out.String(), "1: Groceries - Credit Account")
	assert.Contains(t, out.String(), "0: Create new category")
	assert.Contains(t, out.String(), "2024-03-15 $42.17: WINCO - POS Debit")
}

func TestTerminalDecider_CreateNewCategory(t *testing.T) {
	var out bytes.Buffer
	// 0 -> new category, then its name, then change type #3 (Buy Asset).
	d := decider.NewTerminalDecider(strings.NewReader("0\nInvesting\n3\n"), &out)

	decision, err := d.Decide(context.Background(), testPrompt())

	require.NoError(t, err)
	assert.Equal(t, 0, decision.SelectedIndex)
	assert.Equal(t, "Investing", decision.NewCategory)
	assert.Equal(t, domain.BuyAsset, decision.NewChangeType)
	assert.Contains(t, out.String(), "3: Buy Asset")
}

func TestTerminalDecider_InvalidInputIsRePrompted(t *testing.T) {
	var out bytes.Buffer
	// Garbage, then out of range, then a valid selection.
	d := decider.NewTerminalDecider(strings.NewReader("abc\n7\n1\n"), &out)

	decision, err := d.Decide(context.Background(), testPrompt())

	require.NoError(t, err)
	assert.Equal(t, 1, decision.SelectedIndex)
	assert.Contains(t, out.String(), "That is not a valid selection")
}

func TestTerminalDecider_ClosedInput(t *testing.T) {
	var out bytes.Buffer
	d := decider.NewTerminalDecider(strings.NewReader(""), &out)

	_, err := d.Decide(context.Background(), testPrompt())

	assert.Error(t, err)
}
