package dto

import (
	"github.com/ledgerline/ledgerline/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordResponse defines the data returned for a single ledger record.
type RecordResponse struct {
	RecordID        string           `json:"recordID"`
	AccountID       string           `json:"accountID"`
	AssetID         *string          `json:"assetID,omitempty"`
	Amount          decimal.Decimal  `json:"amount"`
	Business        string           `json:"business"`
	Category        string           `json:"category"`
	Quantity        *decimal.Decimal `json:"quantity,omitempty"`
	ChangeType      string           `json:"changeType"`
	Note            string           `json:"note"`
	TransactionDate string           `json:"transactionDate"` // ISO YYYY-MM-DD
}

// ToRecordResponse converts a domain Record to its response form.
func ToRecordResponse(r domain.Record) RecordResponse {
	return RecordResponse{
		RecordID:        r.RecordID,
		AccountID:       r.AccountID,
		AssetID:         r.AssetID,
		Amount:          r.Amount,
		Business:        r.Business,
		Category:        r.Category,
		Quantity:        r.Quantity,
		ChangeType:      string(r.ChangeType),
		Note:            r.Note,
		TransactionDate: r.TransactionDate.Format(domain.DateFormat),
	}
}

// ListRecordsResponse wraps the records listing.
type ListRecordsResponse struct {
	Records []RecordResponse `json:"records"`
}
