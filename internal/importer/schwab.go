package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ledgerline/ledgerline/internal/core/domain"
)

const schwabDateFormat = "01/02/2006"

// SchwabCheckingParser parses Charles Schwab checking account CSV exports.
type SchwabCheckingParser struct{}

const (
	schwabCheckingColDate       = 0
	schwabCheckingColStatus     = 1
	schwabCheckingColType       = 2
	schwabCheckingColDesc       = 4
	schwabCheckingColWithdrawal = 5
	schwabCheckingColDeposit    = 6
)

// Institute returns the institution key.
func (p *SchwabCheckingParser) Institute() string { return "charles_schwab" }

// Matches accepts checking exports, named "..._Checking_..." by Schwab.
func (p *SchwabCheckingParser) Matches(filename string) bool {
	return strings.Contains(filename, "Checking")
}

// Parse reads a Schwab checking CSV. Only posted transactions are ingested;
// pending lines still move between exports.
func (p *SchwabCheckingParser) Parse(r io.Reader) ([]domain.CanonicalRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading schwab checking CSV: %w", err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	var records []domain.CanonicalRecord
	for i, row := range rows[1:] {
		if len(row) <= schwabCheckingColDeposit || !strings.Contains(row[schwabCheckingColStatus], "Posted") {
			continue
		}
		raw := row[schwabCheckingColDeposit]
		if raw == "" {
			raw = row[schwabCheckingColWithdrawal]
		}
		amount, err := parseAmount(raw)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		date, err := time.Parse(schwabDateFormat, row[schwabCheckingColDate])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", i+2, row[schwabCheckingColDate], err)
		}
		records = append(records, domain.CanonicalRecord{
			Amount:          amount,
			Business:        row[schwabCheckingColDesc],
			Note:            row[schwabCheckingColType],
			TransactionDate: date,
		})
	}
	return records, nil
}

// SchwabInvestmentParser parses Charles Schwab brokerage CSV exports
// (individual and Roth accounts).
type SchwabInvestmentParser struct{}

const (
	schwabInvestColDate     = 0
	schwabInvestColAction   = 1
	schwabInvestColSymbol   = 2
	schwabInvestColDesc     = 3
	schwabInvestColQuantity = 4
	schwabInvestColPrice    = 5
	schwabInvestColAmount   = 7
)

// schwabAssetActions are the brokerage actions that carry an asset leg.
var schwabAssetActions = map[string]bool{
	"Buy":             true,
	"Reinvest Shares": true,
	"Sell":            true,
}

// Institute returns the institution key.
func (p *SchwabInvestmentParser) Institute() string { return "charles_schwab" }

// Matches accepts brokerage exports, named after the account type.
func (p *SchwabInvestmentParser) Matches(filename string) bool {
	return strings.Contains(filename, "Individual") || strings.Contains(filename, "Roth")
}

// Parse reads a Schwab brokerage CSV. Rows with no amount (e.g. journal
// entries) are skipped.
func (p *SchwabInvestmentParser) Parse(r io.Reader) ([]domain.CanonicalRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading schwab investment CSV: %w", err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	var records []domain.CanonicalRecord
	for i, row := range rows[1:] {
		if len(row) <= schwabInvestColAmount || row[schwabInvestColAmount] == "" {
			continue
		}
		amount, err := parseAmount(row[schwabInvestColAmount])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		// Settlement dates show as "as of" suffixes; the leading ten
		// characters are always the trade date.
		rawDate := row[schwabInvestColDate]
		if len(rawDate) > 10 {
			rawDate = rawDate[:10]
		}
		date, err := time.Parse(schwabDateFormat, rawDate)
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", i+2, row[schwabInvestColDate], err)
		}

		action := row[schwabInvestColAction]
		record := domain.CanonicalRecord{
			Amount:          amount,
			Business:        action,
			Note:            row[schwabInvestColDesc] + " " + row[schwabInvestColSymbol],
			TransactionDate: date,
		}
		if schwabAssetActions[action] {
			quantity, err := parseAmount(row[schwabInvestColQuantity])
			if err != nil {
				return nil, fmt.Errorf("row %d: parsing quantity: %w", i+2, err)
			}
			price, err := parseAmount(row[schwabInvestColPrice])
			if err != nil {
				return nil, fmt.Errorf("row %d: parsing price: %w", i+2, err)
			}
			record.Asset = &domain.AssetLeg{
				Name:        row[schwabInvestColDesc],
				Quantity:    quantity,
				MarketValue: price,
				Note:        row[schwabInvestColSymbol],
			}
		}
		records = append(records, record)
	}
	return records, nil
}
