// Package importer turns per-institution statement CSV exports into
// canonical records. Parsers only normalize rows: amounts are unsigned
// magnitudes and direction is never encoded here, that is the category
// resolver's job.
package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledgerline/ledgerline/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Parser converts one institution's statement CSV into CanonicalRecords.
type Parser interface {
	// Institute returns the institution key this parser belongs to.
	Institute() string

	// Matches reports whether this parser handles the given export file name.
	// Some institutions ship multiple export shapes distinguished by name.
	Matches(filename string) bool

	// Parse reads a statement CSV in the institution's conventional order
	// (newest line first).
	Parse(r io.Reader) ([]domain.CanonicalRecord, error)
}

// Registry holds the known parsers.
type Registry struct {
	parsers []Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a parser.
func (r *Registry) Register(p Parser) {
	r.parsers = append(r.parsers, p)
}

// Find returns the parser for the given institution and file name.
func (r *Registry) Find(institute, filename string) (Parser, error) {
	key := strings.ToLower(strings.TrimSpace(institute))
	known := false
	for _, p := range r.parsers {
		if p.Institute() != key {
			continue
		}
		known = true
		if p.Matches(filename) {
			return p, nil
		}
	}
	if known {
		return nil, fmt.Errorf("no %s parser handles file %q", key, filename)
	}
	return nil, fmt.Errorf("unsupported institute %q", institute)
}

// Institutes lists the distinct institution keys with registered parsers.
func (r *Registry) Institutes() []string {
	seen := make(map[string]bool)
	var keys []string
	for _, p := range r.parsers {
		if !seen[p.Institute()] {
			seen[p.Institute()] = true
			keys = append(keys, p.Institute())
		}
	}
	return keys
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&NavyFederalParser{})
	r.Register(&SchwabCheckingParser{})
	r.Register(&SchwabInvestmentParser{})
	r.Register(&TRowePriceParser{})
	return r
}

// parseAmount strips currency markers and returns the unsigned magnitude.
func parseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(s))
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return d.Abs(), nil
}
