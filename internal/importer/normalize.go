package importer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Row-scoped normalization errors. A row that trips one of these is
// recorded as failed and the scan moves on to the next row.
var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrMissingAmount = errors.New("missing amount")
	ErrInvalidAmount = errors.New("invalid amount")
)

// canonicalDate is the storage and comparison format for all dates.
const canonicalDate = "2006-01-02"

// dateLayouts are tried in order and the first successful parse wins.
// The order is load-bearing: "03/04/2024" is read as March 4 (month/day)
// because the US layout sits before the day/month one. Locale-ambiguous
// tokens are resolved by position in this list, not by guessing.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02/01/2006",
	"02-Jan-2006",
	"02-January-2006",
	"Jan 2 2006",
	"January 2 2006",
}

// NormalizeDate converts a raw date token into the canonical YYYY-MM-DD
// form using the ordered layout list above.
func NormalizeDate(token string) (string, error) {
	s := strings.TrimSpace(token)
	if s == "" {
		return "", fmt.Errorf("%w: empty token", ErrInvalidDate)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(canonicalDate), nil
		}
	}

	// Last resort: tokens like "2024-03-04T00:00:00" or "2024/03/04 10:15"
	// still carry an ISO-shaped date in their first ten characters.
	if d, ok := isoPrefix(s); ok {
		return d, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidDate, token)
}

// isoPrefix extracts a YYYY-MM-DD prefix when the token starts with four
// digits, a separator, two digits, a separator, and two digits. Either "-"
// or "/" is accepted as separator and normalized to "-".
func isoPrefix(s string) (string, bool) {
	if len(s) < 10 {
		return "", false
	}
	b := []byte(s[:10])
	for i, c := range b {
		switch i {
		case 4, 7:
			if c != '-' && c != '/' {
				return "", false
			}
			b[i] = '-'
		default:
			if c < '0' || c > '9' {
				return "", false
			}
		}
	}
	return string(b), true
}

// Debit markers are scanned before credit markers, so a token carrying
// both resolves as credit.
var (
	debitMarkers  = []string{"withdrawal", "debit", "dr"}
	creditMarkers = []string{"deposit", "credit", "cr"}
)

var centsPerUnit = decimal.NewFromInt(100)

// NormalizeAmount converts a raw amount token into signed cents. It
// tolerates currency symbols, thousands separators, parenthesized
// negatives, and DR/CR-style markers. A leading minus on the numeric text
// itself is authoritative and overrides any marker.
func NormalizeAmount(token string) (int64, error) {
	s := strings.TrimSpace(token)
	if s == "" {
		return 0, ErrMissingAmount
	}

	sign := int64(1)
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		sign = -1
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	lower := strings.ToLower(s)
	if containsAny(lower, debitMarkers) {
		sign = -1
	}
	if containsAny(lower, creditMarkers) {
		sign = 1
	}

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-', r == '+':
			return r
		}
		return -1
	}, s)

	switch cleaned {
	case "", "-", "+", ".", "-.", "+.":
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, token)
	}

	if strings.HasPrefix(cleaned, "-") {
		sign = -1
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, token)
	}

	// Round half away from zero to the nearest cent.
	cents := d.Abs().Mul(centsPerUnit).Round(0).IntPart()
	return sign * cents, nil
}

// resolveAmount extracts the signed cent amount for one row. A mapped
// single-amount column always takes precedence over the debit/credit pair.
// Within the pair, a non-empty debit is negative and a non-empty credit
// positive regardless of how the token itself is signed.
func resolveAmount(row []string, m Mapping) (int64, error) {
	if m.Amount != Unset {
		return NormalizeAmount(cell(row, m.Amount))
	}

	if debit := cell(row, m.Debit); debit != "" {
		cents, err := NormalizeAmount(debit)
		if err != nil {
			return 0, err
		}
		return -abs(cents), nil
	}

	if credit := cell(row, m.Credit); credit != "" {
		cents, err := NormalizeAmount(credit)
		if err != nil {
			return 0, err
		}
		return abs(cents), nil
	}

	return 0, ErrMissingAmount
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
