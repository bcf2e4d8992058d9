package mapping

import (
	"github.com/ledgerline/ledgerline/internal/core/domain"
	"github.com/ledgerline/ledgerline/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:       d.AccountID,
		BookID:          d.BookID,
		Name:            d.Name,
		Purpose:         d.Purpose,
		CashFunds:       d.CashFunds,
		InvestmentWorth: d.InvestmentWorth,
		DebtTotal:       d.DebtTotal,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:       m.AccountID,
		BookID:          m.BookID,
		Name:            m.Name,
		Purpose:         m.Purpose,
		CashFunds:       m.CashFunds,
		InvestmentWorth: m.InvestmentWorth,
		DebtTotal:       m.DebtTotal,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
