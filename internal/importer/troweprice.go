package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ledgerline/ledgerline/internal/core/domain"
)

// TRowePriceParser parses T. Rowe Price 401(k) activity CSV exports.
type TRowePriceParser struct{}

const (
	trpDateFormat    = "01/02/2006"
	trpHeaderRows    = 4 // preamble rows before the data
	trpColDate       = 0
	trpColActivity   = 1
	trpColFund       = 2
	trpColSource     = 3
	trpColAmount     = 4
	trpColShares     = 5
	trpColSharePrice = 6
)

// trpAssetActivities are the activity types that carry an asset leg.
var trpAssetActivities = map[string]bool{
	"Exchange Out": true,
	"Exchange In":  true,
}

// Institute returns the institution key.
func (p *TRowePriceParser) Institute() string { return "t_rowe_price" }

// Matches accepts any CSV export.
func (p *TRowePriceParser) Matches(filename string) bool {
	return strings.Contains(strings.ToLower(filename), ".csv")
}

// Parse reads a T. Rowe Price 401(k) CSV. Contributions and fee rebates
// produce two records: a cash transfer into the account and the exchange of
// that cash into a fund. Market fluctuation lines are positional noise, not
// transactions, and are skipped.
func (p *TRowePriceParser) Parse(r io.Reader) ([]domain.CanonicalRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading t rowe price CSV: %w", err)
	}
	if len(rows) <= trpHeaderRows {
		return nil, nil
	}

	var records []domain.CanonicalRecord
	for i, row := range rows[trpHeaderRows:] {
		rowNum := i + trpHeaderRows + 1
		if len(row) <= trpColSharePrice {
			continue
		}
		activity := strings.TrimSpace(row[trpColActivity])
		if activity == "Market Fluctuation" {
			continue
		}
		if activity == "Fee" {
			if !strings.HasPrefix(strings.TrimPrefix(row[trpColAmount], "$"), "-") {
				activity = "Rebate"
			} else {
				return nil, fmt.Errorf("row %d: fee events are not supported", rowNum)
			}
		}

		amount, err := parseAmount(row[trpColAmount])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		date, err := time.Parse(trpDateFormat, row[trpColDate])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", rowNum, row[trpColDate], err)
		}

		var transferIn *domain.CanonicalRecord
		if activity == "Contribution" || activity == "Rebate" {
			transferIn = &domain.CanonicalRecord{
				Amount:          amount,
				Business:        row[trpColSource],
				Note:            activity + " to account",
				TransactionDate: date,
			}
			activity = "Exchange In"
		}

		record := domain.CanonicalRecord{
			Amount:          amount,
			Business:        row[trpColSource],
			Note:            activity + " " + row[trpColFund],
			TransactionDate: date,
		}
		if trpAssetActivities[activity] {
			shares, err := parseAmount(row[trpColShares])
			if err != nil {
				return nil, fmt.Errorf("row %d: parsing shares: %w", rowNum, err)
			}
			price, err := parseAmount(row[trpColSharePrice])
			if err != nil {
				return nil, fmt.Errorf("row %d: parsing share price: %w", rowNum, err)
			}
			record.Asset = &domain.AssetLeg{
				Name:        row[trpColFund],
				Quantity:    shares,
				MarketValue: price,
				Note:        row[trpColSource],
			}
		}
		records = append(records, record)
		if transferIn != nil {
			records = append(records, *transferIn)
		}
	}
	return records, nil
}
