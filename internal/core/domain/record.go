package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is a single transaction mutating exactly one account balance. A
// record may carry at most one asset leg and at most one liability leg; it is
// immutable once persisted.
type Record struct {
	RecordID        string           `json:"recordID"`    // Primary Key (UUID); empty until persisted
	AccountID       string           `json:"accountID"`   // FK -> accounts.account_id (NON-NULL)
	AssetID         *string          `json:"assetID"`     // Nullable FK -> assets.asset_id
	LiabilityID     *string          `json:"liabilityID"` // Nullable FK -> liabilities.liability_id
	Amount          decimal.Decimal  `json:"amount"`      // Unsigned magnitude; direction comes from ChangeType
	Business        string           `json:"business"`    // Counterparty
	Category        string           `json:"category"`    // Free-text label assigned by the resolver
	Quantity        *decimal.Decimal `json:"quantity"`    // Mirrors the asset leg's quantity delta, nullable
	ChangeType      RecordChangeType `json:"changeType"`
	Note            string           `json:"note"`
	TransactionDate time.Time        `json:"transactionDate"` // Calendar date, persisted as YYYY-MM-DD
	AuditFields
}

// RecordKey is the seven-field natural key used to detect duplicate records
// across re-ingestion. All seven fields must match exactly.
type RecordKey struct {
	AccountID       string
	Amount          decimal.Decimal
	Business        string
	Category        string
	ChangeType      RecordChangeType
	Note            string
	TransactionDate time.Time
}

// NaturalKey returns the dedup key for this record.
func (r Record) NaturalKey() RecordKey {
	return RecordKey{
		AccountID:       r.AccountID,
		Amount:          r.Amount,
		Business:        r.Business,
		Category:        r.Category,
		ChangeType:      r.ChangeType,
		Note:            r.Note,
		TransactionDate: r.TransactionDate,
	}
}

// CategoryChoice is a (category, change type) pair previously used for an
// account, offered to the decision capability during resolution.
type CategoryChoice struct {
	Category   string           `json:"category"`
	ChangeType RecordChangeType `json:"changeType"`
}
