package verify

import (
	"fmt"

	"github.com/shopspring/decimal"

	"slipverify/constants"
	"slipverify/internal/identifier"
)

// Caller-visible message templates. The bracketed parts are substituted;
// the wording is part of the API contract.
const (
	MsgInvalidIdentifier = "recipient identifier invalid — must be a 10-digit phone number or a 15-digit wallet ID starting with 14000."
	MsgNegativeAmount    = "amount must be greater than or equal to 0."
	msgSuccessFmt        = "verification passed: found identifier and amount %s."
	msgNoIdentifierFmt   = "identifier (%s) not found in slip."
	msgNoAmount          = "amount not found in slip."
)

// Debug carries raw extraction diagnostics. Attached to a verdict only
// when the caller asks for it.
type Debug struct {
	Text            string          `json:"ocr"`
	IdentifierFound bool            `json:"wallet"`
	AmountFound     bool            `json:"amountFound"`
	Amount          decimal.Decimal `json:"amount"`
}

// Verdict is the final tagged outcome of one slip verification.
type Verdict struct {
	Status  constants.VerificationStatus
	Message string
	// Amount is the parsed amount; meaningful only when Status is
	// StatusSuccess.
	Amount decimal.Decimal
	Debug  *Debug
}

// OK reports whether the slip passed verification.
func (v Verdict) OK() bool {
	return v.Status == constants.StatusSuccess
}

// Compose combines identifier and amount evidence into a verdict. Rules
// apply in order, first match wins:
//
//	identifier found, amount found, amount > 0  -> SUCCESS
//	identifier missing                          -> NO_RECIPIENT
//	otherwise (amount missing or not positive)  -> NO_AMOUNT
//
// Identifier absence always wins over amount absence even though the
// predicates are computed independently.
func Compose(idFound bool, amount decimal.Decimal, amountFound bool, expected identifier.RecipientIdentifier) Verdict {
	switch {
	case idFound && amountFound && amount.GreaterThan(decimal.Zero):
		return Verdict{
			Status:  constants.StatusSuccess,
			Message: fmt.Sprintf(msgSuccessFmt, amount.StringFixed(2)),
			Amount:  amount,
		}
	case !idFound:
		return Verdict{
			Status:  constants.StatusNoRecipient,
			Message: fmt.Sprintf(msgNoIdentifierFmt, expected.Value),
		}
	default:
		return Verdict{
			Status:  constants.StatusNoAmount,
			Message: msgNoAmount,
		}
	}
}

// Run extracts evidence from OCR text and composes the verdict for the
// expected recipient. withDebug attaches the raw text and intermediate
// evidence to the result. Pure: safe to call concurrently.
func Run(text string, expected identifier.RecipientIdentifier, withDebug bool) Verdict {
	idFound := IdentifierEvidence(text, expected)
	amount, amountFound := AmountEvidence(text)

	v := Compose(idFound, amount, amountFound, expected)
	if withDebug {
		v.Debug = &Debug{
			Text:            text,
			IdentifierFound: idFound,
			AmountFound:     amountFound,
			Amount:          amount,
		}
	}
	return v
}
