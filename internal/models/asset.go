package models

import (
	"github.com/shopspring/decimal"
)

// Asset represents a tradable holding row owned by one account.
type Asset struct {
	AssetID     string          `db:"asset_id"`
	AccountID   string          `db:"account_id"`
	Name        string          `db:"name"`
	Quantity    decimal.Decimal `db:"quantity"`
	MarketValue decimal.Decimal `db:"market_value"`
	Note        string          `db:"note"`
	AuditFields
}
