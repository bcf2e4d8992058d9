package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ledgerline/ledgerline/internal/core/domain"
)

// NavyFederalParser parses Navy Federal credit card CSV exports.
type NavyFederalParser struct{}

const (
	navyFederalDateFormat = "01/02/2006"
	navyFederalNumFields  = 12
	navyFederalColDate    = 1
	navyFederalColAmount  = 2
	navyFederalColPayee   = 10
	navyFederalColMemo    = 11
)

// Institute returns the institution key.
func (p *NavyFederalParser) Institute() string { return "navy_federal" }

// Matches accepts any CSV export.
func (p *NavyFederalParser) Matches(filename string) bool {
	return strings.Contains(strings.ToLower(filename), ".csv")
}

// Parse reads a Navy Federal CSV and returns CanonicalRecords.
func (p *NavyFederalParser) Parse(r io.Reader) ([]domain.CanonicalRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = navyFederalNumFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading navy federal CSV: %w", err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	var records []domain.CanonicalRecord
	for i, row := range rows[1:] {
		date, err := time.Parse(navyFederalDateFormat, row[navyFederalColDate])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", i+2, row[navyFederalColDate], err)
		}
		amount, err := parseAmount(row[navyFederalColAmount])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, domain.CanonicalRecord{
			Amount:          amount,
			Business:        row[navyFederalColPayee],
			Note:            row[navyFederalColMemo],
			TransactionDate: date,
		})
	}
	return records, nil
}
