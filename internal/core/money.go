// Package core provides the wallet domain model plus amount parsing and
// formatting utilities.
//
// Amounts are ordinary float64 currency values rounded to cents on input;
// the ledger makes no fixed-point accounting guarantees.
package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseAmount converts a user-entered decimal string to a positive amount.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and
// rounds half-up to cents. Signs, empty strings, non-numeric input and
// non-positive values are rejected with ErrInvalidAmount.
//
// Examples:
//
//	ParseAmount("12.34")  -> 12.34, nil
//	ParseAmount("12,34")  -> 12.34, nil
//	ParseAmount("12.345") -> 12.35, nil (rounds up)
//	ParseAmount("-3")     -> 0, ErrInvalidAmount
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		// Only positive values allowed
		return 0, ErrInvalidAmount
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	for _, part := range parts {
		for _, r := range part {
			if !unicode.IsDigit(r) {
				return 0, ErrInvalidAmount
			}
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	// Half-up rounding to cents
	v = math.Round(v*100) / 100
	if v <= 0 || math.IsInf(v, 0) {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// FormatAmount renders an amount the way the UI and notification feed
// display it, e.g. "$42.50".
func FormatAmount(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// FormatSigned renders an amount with an explicit sign, e.g. "+$50.00"
// or "-$42.50".
func FormatSigned(v float64) string {
	if v < 0 {
		return "-" + FormatAmount(-v)
	}
	return "+" + FormatAmount(v)
}
