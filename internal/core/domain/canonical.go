package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetLeg is the optional asset-bearing portion of a canonical record.
// Quantity is the magnitude of the share movement; direction comes from the
// resolved change type, the same way cash direction does.
type AssetLeg struct {
	Name        string          `json:"name"`
	Quantity    decimal.Decimal `json:"quantity"`
	MarketValue decimal.Decimal `json:"marketValue"` // Price per unit at transaction time
	Note        string          `json:"note"`
}

// CanonicalRecord is the dependency-free pre-record tuple produced by
// statement parsers. Amounts are unsigned magnitudes; parsers never encode
// direction.
type CanonicalRecord struct {
	Amount          decimal.Decimal `json:"amount"`
	Business        string          `json:"business"`
	Note            string          `json:"note"`
	TransactionDate time.Time       `json:"transactionDate"`
	Asset           *AssetLeg       `json:"asset"` // Nil for pure cash events
}
