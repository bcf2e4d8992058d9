package domain

import (
	"github.com/shopspring/decimal"
)

// Asset is a tradable holding owned by exactly one account. Identity is
// resolved lazily by (account, name); an asset row is created on the first
// buy/sell reference and never deleted.
type Asset struct {
	AssetID     string          `json:"assetID"`     // Primary Key (UUID); empty until first persisted
	AccountID   string          `json:"accountID"`   // FK -> accounts.account_id (NON-NULL)
	Name        string          `json:"name"`        // Ticker or fund name as parsed
	Quantity    decimal.Decimal `json:"quantity"`    // Can be fractional shares
	MarketValue decimal.Decimal `json:"marketValue"` // Latest known price per unit, overwritten on every update
	Note        string          `json:"note"`
	AuditFields
}

// Liability is a debt owed by one account. The update protocol is a known
// stub: invoking it fails with apperrors.ErrNotImplemented.
type Liability struct {
	LiabilityID  string          `json:"liabilityID"` // Primary Key (UUID)
	AccountID    string          `json:"accountID"`   // FK -> accounts.account_id (NON-NULL)
	Name         string          `json:"name"`
	Principle    decimal.Decimal `json:"principle"`
	Interest     decimal.Decimal `json:"interest"`
	InterestRate decimal.Decimal `json:"interestRate"`
	Note         string          `json:"note"`
}
