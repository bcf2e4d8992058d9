package dto

import (
	"time"

	"github.com/ledgerline/ledgerline/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to bootstrap a new account.
// Balances may be seeded for accounts with pre-existing history.
type CreateAccountRequest struct {
	BookID          string          `json:"bookID"`   // Optional: a new book is created when empty
	BookName        string          `json:"bookName"` // Used when creating a new book
	Name            string          `json:"name" binding:"required"`
	Purpose         string          `json:"purpose"`
	CashFunds       decimal.Decimal `json:"cashFunds"`
	InvestmentWorth decimal.Decimal `json:"investmentWorth"`
	DebtTotal       decimal.Decimal `json:"debtTotal"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID       string          `json:"accountID"`
	BookID          string          `json:"bookID"`
	Name            string          `json:"name"`
	Purpose         string          `json:"purpose"`
	CashFunds       decimal.Decimal `json:"cashFunds"`
	InvestmentWorth decimal.Decimal `json:"investmentWorth"`
	DebtTotal       decimal.Decimal `json:"debtTotal"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain Account to its response form.
func ToAccountResponse(a domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       a.AccountID,
		BookID:          a.BookID,
		Name:            a.Name,
		Purpose:         a.Purpose,
		CashFunds:       a.CashFunds,
		InvestmentWorth: a.InvestmentWorth,
		DebtTotal:       a.DebtTotal,
		CreatedAt:       a.CreatedAt,
		LastUpdatedAt:   a.LastUpdatedAt,
	}
}

// ListAccountsResponse wraps the accounts listing.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
