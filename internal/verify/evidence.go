// Package verify is the slip verification decision engine: it scans OCR
// text for recipient-identifier and amount evidence and composes the
// final verdict.
package verify

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"slipverify/internal/identifier"
)

// shapePattern is one printed rendering of a wallet identifier as it
// appears on slips.
type shapePattern struct {
	name string
	re   *regexp.Regexp
}

// Printed slips render the wallet ID in several visually distinct ways:
// fully or partially masked, hyphen-grouped, or contiguous. The patterns
// are independent and unanchored; any single hit counts as evidence.
//
// Known leniency, kept on purpose: these shapes establish that *a* wallet
// identifier is printed on the slip, not that it equals the expected one.
// Only the substring fallback in IdentifierEvidence compares against the
// caller's identifier. Fine for a single-merchant deployment; revisit
// before verifying against arbitrary per-request identifiers.
var walletShapes = []shapePattern{
	{name: "masked", re: regexp.MustCompile(`140-([xX\d]{8,9})-7315`)},
	{name: "full", re: regexp.MustCompile(`140-?\d{9}-?7315`)},
	{name: "full-no-dash", re: regexp.MustCompile(`140\d{9}7315`)},
	{name: "grouped", re: regexp.MustCompile(`14000-\d{3}-\d{3}-\d{4}`)},
	{name: "bare-15", re: regexp.MustCompile(`14000\d{10}`)},
}

// IdentifierEvidence reports whether text contains evidence of the
// expected recipient: any wallet shape pattern firing, or the normalized
// text containing the expected identifier's digit string.
func IdentifierEvidence(text string, expected identifier.RecipientIdentifier) bool {
	for _, p := range walletShapes {
		if p.re.MatchString(text) {
			return true
		}
	}
	if expected.Value == "" {
		return false
	}
	return strings.Contains(identifier.Normalize(text), expected.Value)
}

// Amount with the currency token right after it, with at most two
// fractional digits. Matches "150.50 บาท", "100บาท", "29 THB".
var reAmount = regexp.MustCompile(`(?i)([0-9]+(?:\.[0-9]{1,2})?)\s*(บาท|THB)`)

// AmountEvidence extracts the transferred amount from text. It searches
// the whole text first, then falls back to line-by-line matching and
// returns the first line that matches. The fallback catches slips where
// OCR breaks the amount and its unit label across lines or mangles the
// surrounding context. Returns ok=false if nothing matches anywhere.
func AmountEvidence(text string) (decimal.Decimal, bool) {
	if m := reAmount.FindStringSubmatch(text); m != nil {
		if d, err := decimal.NewFromString(m[1]); err == nil {
			return d, true
		}
	}
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if m := reAmount.FindStringSubmatch(line); m != nil {
			if d, err := decimal.NewFromString(m[1]); err == nil {
				return d, true
			}
		}
	}
	return decimal.Decimal{}, false
}
