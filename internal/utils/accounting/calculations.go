package accounting

import (
	"fmt"

	"github.com/ledgerline/ledgerline/internal/apperrors"
	"github.com/ledgerline/ledgerline/internal/core/domain"
	"github.com/shopspring/decimal"
)

// changeRule is the balance-update rule carried by one change-type variant.
// Rules are selected once when the resolver fixes the change type and never
// re-derived from amount signs.
type changeRule struct {
	cashSign     int // +1 cash in, -1 cash out, 0 no cash leg
	quantitySign int // +1 shares in, -1 shares out, 0 re-pricing only
}

var changeRules = map[domain.RecordChangeType]changeRule{
	domain.DebitAccount:  {cashSign: +1},
	domain.CreditAccount: {cashSign: -1},
	domain.SellAsset:     {cashSign: +1, quantitySign: -1},
	domain.BuyAsset:      {cashSign: -1, quantitySign: +1},
	domain.MarketUpdate:  {}, // no cash leg, no quantity delta
}

// CashDelta returns the signed change to an account's cash funds for a record
// of the given magnitude and change type. MARKET_UPDATE and unknown types are
// rejected: the caller must not fall through to a no-op.
func CashDelta(amount decimal.Decimal, changeType domain.RecordChangeType) (decimal.Decimal, error) {
	rule, ok := changeRules[changeType]
	if !ok || rule.cashSign == 0 {
		return decimal.Zero, fmt.Errorf("%w: %s cannot update cash funds", apperrors.ErrUnsupportedChangeType, changeType)
	}
	if rule.cashSign < 0 {
		return amount.Neg(), nil
	}
	return amount, nil
}

// QuantityDelta returns the signed share-quantity change for an asset leg of
// the given magnitude and change type. MARKET_UPDATE yields zero: only the
// price re-marking moves value in that case.
func QuantityDelta(quantity decimal.Decimal, changeType domain.RecordChangeType) (decimal.Decimal, error) {
	rule, ok := changeRules[changeType]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s cannot update an asset", apperrors.ErrUnsupportedChangeType, changeType)
	}
	switch {
	case rule.quantitySign < 0:
		return quantity.Neg(), nil
	case rule.quantitySign > 0:
		return quantity, nil
	default:
		return decimal.Zero, nil
	}
}

// HasCashLeg reports whether records of this change type move cash at all.
// The ingestion pipeline uses this to skip the cash-funds update for pure
// re-pricing events instead of invoking it and failing.
func HasCashLeg(changeType domain.RecordChangeType) bool {
	rule, ok := changeRules[changeType]
	return ok && rule.cashSign != 0
}

// ValueDelta returns the change to an account's investment worth when a
// stored position of storedQuantity shares priced at storedMarketValue moves
// by quantityDelta shares and is re-marked to newMarketValue. A brand-new
// position is the zero-stored case: the delta is its full initial value.
func ValueDelta(storedQuantity, storedMarketValue, quantityDelta, newMarketValue decimal.Decimal) decimal.Decimal {
	oldTotal := storedQuantity.Mul(storedMarketValue)
	newTotal := storedQuantity.Add(quantityDelta).Mul(newMarketValue)
	return newTotal.Sub(oldTotal)
}

// RoundToCents rounds a monetary total to 2-decimal precision for storage.
func RoundToCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
