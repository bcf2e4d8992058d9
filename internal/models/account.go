package models

import (
	"github.com/shopspring/decimal"
)

// Book groups accounts belonging to the same set of books.
type Book struct {
	BookID string `db:"book_id"`
	Name   string `db:"name"`
	AuditFields
}

// Account represents a bank or brokerage account row.
type Account struct {
	AccountID       string          `db:"account_id"`
	BookID          string          `db:"book_id"`
	Name            string          `db:"name"`
	Purpose         string          `db:"purpose"`
	CashFunds       decimal.Decimal `db:"cash_funds"`
	InvestmentWorth decimal.Decimal `db:"investment_worth"`
	DebtTotal       decimal.Decimal `db:"debt_total"`
	AuditFields
}
