package importer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMapping is fatal to the whole scan and is raised before any
// data row is read.
var ErrInvalidMapping = errors.New("invalid column mapping")

// Unset marks a role with no column assigned.
const Unset = -1

// Mapping assigns each logical role to a zero-based column index. Amount
// is a single signed column; Debit and Credit are a pair of unsigned
// columns. When Amount is set it takes precedence over the pair.
type Mapping struct {
	Date        int
	Description int
	Amount      int
	Debit       int
	Credit      int
}

// NewMapping returns a Mapping with every role unset.
func NewMapping() Mapping {
	return Mapping{
		Date:        Unset,
		Description: Unset,
		Amount:      Unset,
		Debit:       Unset,
		Credit:      Unset,
	}
}

// Per-role keyword lists. A header cell claims a role when its lowercased
// text contains any of the role's keywords; cells are scanned left to
// right and each role is filled at most once.
var (
	dateKeywords        = []string{"date", "posted", "posting", "transaction date", "trans date"}
	descriptionKeywords = []string{"description", "details", "memo", "merchant", "narrative", "name"}
	amountKeywords      = []string{"amount", "amt", "value"}
	debitKeywords       = []string{"debit", "withdrawal", "money out"}
	creditKeywords      = []string{"credit", "deposit", "money in"}
)

// InferMapping proposes a default Mapping from a header row. It is a
// heuristic seed only: the caller may override any assignment before
// scanning, and inference never blocks a scan.
func InferMapping(header []string) Mapping {
	m := NewMapping()
	m.Date = findColumn(header, dateKeywords)
	m.Description = findColumn(header, descriptionKeywords)
	m.Amount = findColumn(header, amountKeywords)
	m.Debit = findColumn(header, debitKeywords)
	m.Credit = findColumn(header, creditKeywords)
	return m
}

func findColumn(header []string, keywords []string) int {
	for i, h := range header {
		lower := strings.ToLower(h)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return i
			}
		}
	}
	return Unset
}

// Validate reports whether the mapping satisfies the scan preconditions:
// date and description assigned, plus either a single amount column or at
// least one of the debit/credit pair.
func (m Mapping) Validate() error {
	if m.Date == Unset {
		return fmt.Errorf("%w: no date column", ErrInvalidMapping)
	}
	if m.Description == Unset {
		return fmt.Errorf("%w: no description column", ErrInvalidMapping)
	}
	if m.Amount == Unset && m.Debit == Unset && m.Credit == Unset {
		return fmt.Errorf("%w: no amount or debit/credit column", ErrInvalidMapping)
	}
	return nil
}

// String renders the mapping for display, with "-" for unset roles.
func (m Mapping) String() string {
	col := func(i int) string {
		if i == Unset {
			return "-"
		}
		return fmt.Sprintf("%d", i)
	}
	return fmt.Sprintf("date=%s description=%s amount=%s debit=%s credit=%s",
		col(m.Date), col(m.Description), col(m.Amount), col(m.Debit), col(m.Credit))
}
