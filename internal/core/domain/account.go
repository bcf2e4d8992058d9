package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a bank or brokerage account within the core domain.
// This is the primary representation used by services.
type Account struct {
	AccountID       string          `json:"accountID"`       // Primary Key (UUID)
	BookID          string          `json:"bookID"`          // FK -> books.book_id (NON-NULL)
	Name            string          `json:"name"`            // User-defined name
	Purpose         string          `json:"purpose"`         // Free-text description of what the account is for
	CashFunds       decimal.Decimal `json:"cashFunds"`       // Running cash total, 2-decimal precision
	InvestmentWorth decimal.Decimal `json:"investmentWorth"` // Sum of quantity*market_value over owned assets
	DebtTotal       decimal.Decimal `json:"debtTotal"`       // Running liability total (stubbed updates)
	AuditFields
}

// Book groups accounts that belong to the same set of books.
type Book struct {
	BookID string `json:"bookID"` // Primary Key (UUID)
	Name   string `json:"name"`
	AuditFields
}
