// Package identifier normalizes and classifies payment recipient
// identifiers: G-Wallet IDs and PromptPay phone numbers.
package identifier

import (
	"regexp"
	"strings"
)

// Kind tags the recognized form of a recipient identifier.
type Kind int

const (
	// Invalid means the input matched neither supported form.
	Invalid Kind = iota
	// WalletLong is a 15-digit G-Wallet ID starting with 14000.
	WalletLong
	// PhoneShort is a 10-digit PromptPay phone number starting with 0.
	PhoneShort
)

func (k Kind) String() string {
	switch k {
	case WalletLong:
		return "WALLET"
	case PhoneShort:
		return "PHONE"
	default:
		return "INVALID"
	}
}

// RecipientIdentifier is a normalized recipient identifier with its kind.
// Construct via Classify; the zero value is Invalid.
type RecipientIdentifier struct {
	// Value is the normalized digit string (spaces and hyphens removed).
	Value string
	Kind  Kind
}

// Valid reports whether the identifier matched a supported form.
func (r RecipientIdentifier) Valid() bool {
	return r.Kind != Invalid
}

var (
	reWallet = regexp.MustCompile(`^14000\d{10}$`)
	rePhone  = regexp.MustCompile(`^0\d{9}$`)
	reStrip  = regexp.MustCompile(`[\s-]`)
)

// Normalize trims the input and removes all whitespace and hyphens.
func Normalize(raw string) string {
	return reStrip.ReplaceAllString(strings.TrimSpace(raw), "")
}

// Classify normalizes raw input and tags it as WalletLong, PhoneShort or
// Invalid. Wallet form is tested first; first match wins. Total and pure:
// an unrecognized identifier is a value, not an error, and the caller
// decides how to respond.
func Classify(raw string) RecipientIdentifier {
	v := Normalize(raw)
	switch {
	case v == "":
		return RecipientIdentifier{Value: v, Kind: Invalid}
	case reWallet.MatchString(v):
		return RecipientIdentifier{Value: v, Kind: WalletLong}
	case rePhone.MatchString(v):
		return RecipientIdentifier{Value: v, Kind: PhoneShort}
	default:
		return RecipientIdentifier{Value: v, Kind: Invalid}
	}
}
