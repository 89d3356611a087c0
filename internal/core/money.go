// Package core provides the ledger's domain types.
//
// Amounts are Korean won, which has no minor unit in everyday use, so Won is
// a plain integer count.
package core

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Won is an amount of Korean won.
type Won int64

// ParseWon parses a positive whole-won amount. Thousands separators
// ("12,000"), a leading "₩" and a trailing "원" are accepted.
func ParseWon(s string) (Won, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "₩")
	s = strings.TrimSuffix(s, "원")
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" || strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v <= 0 {
		return 0, ErrInvalidAmount
	}
	return Won(v), nil
}

// String formats the amount for display, e.g. "₩12,000" or "-₩3,500".
func (w Won) String() string {
	if w < 0 {
		return "-₩" + humanize.Comma(int64(-w))
	}
	return "₩" + humanize.Comma(int64(w))
}
