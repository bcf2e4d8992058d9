package domain

// RecordChangeType is the closed set of effects a record can have on its
// account. It is the single source of truth for which balance field moves and
// in which direction; amount signs are never used to infer direction.
type RecordChangeType string

const (
	CreditAccount RecordChangeType = "CREDIT_ACCOUNT" // cash out of the account
	DebitAccount  RecordChangeType = "DEBIT_ACCOUNT"  // cash into the account
	BuyAsset      RecordChangeType = "BUY_ASSET"      // cash out, quantity up
	SellAsset     RecordChangeType = "SELL_ASSET"     // cash in, quantity down
	MarketUpdate  RecordChangeType = "MARKET_UPDATE"  // re-pricing only, no cash leg
)

// RecordChangeTypes lists every supported change type in presentation order.
func RecordChangeTypes() []RecordChangeType {
	return []RecordChangeType{CreditAccount, DebitAccount, BuyAsset, SellAsset, MarketUpdate}
}

// IsValid reports whether t is a member of the closed change-type set.
func (t RecordChangeType) IsValid() bool {
	switch t {
	case CreditAccount, DebitAccount, BuyAsset, SellAsset, MarketUpdate:
		return true
	}
	return false
}

// Label returns the human-readable form used in decision prompts.
func (t RecordChangeType) Label() string {
	switch t {
	case CreditAccount:
		return "Credit Account"
	case DebitAccount:
		return "Debit Account"
	case BuyAsset:
		return "Buy Asset"
	case SellAsset:
		return "Sell Asset"
	case MarketUpdate:
		return "Market Update"
	}
	return string(t)
}

// AffectsAsset reports whether records of this type carry an asset leg.
func (t RecordChangeType) AffectsAsset() bool {
	return t == BuyAsset || t == SellAsset || t == MarketUpdate
}
