package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record represents a persisted transaction row. AssetID, LiabilityID and
// Quantity are nullable columns.
type Record struct {
	RecordID        string           `db:"record_id"`
	AccountID       string           `db:"account_id"`
	AssetID         *string          `db:"asset_id"`
	LiabilityID     *string          `db:"liability_id"`
	Amount          decimal.Decimal  `db:"amount"`
	Business        string           `db:"business"`
	Category        string           `db:"category"`
	Quantity        *decimal.Decimal `db:"quantity"`
	ChangeType      string           `db:"change_type"`
	Note            string           `db:"note"`
	TransactionDate time.Time        `db:"transaction_date"`
	CreatedAt       time.Time        `db:"created_at"`
}
