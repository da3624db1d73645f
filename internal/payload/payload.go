// Package payload builds PromptPay payment-code payloads and renders them
// as scannable QR images.
package payload

import (
	"github.com/Frontware/promptpay"
	"github.com/shopspring/decimal"

	"slipverify/internal/common"
	"slipverify/internal/identifier"
)

// Build encodes a recipient identifier and optional amount into the
// PromptPay EMVCo tag/length/value payload string. Amount zero (or
// negative, which callers reject upstream) yields an open-amount payload
// where the payer keys in the amount. Deterministic: same inputs always
// produce the same payload.
func Build(id identifier.RecipientIdentifier, amount decimal.Decimal) (string, error) {
	if !id.Valid() {
		return "", common.NewAppError("INVALID_IDENTIFIER",
			"recipient identifier is not a supported wallet or phone form", common.ErrValidation)
	}

	p := promptpay.PromptPay{
		PromptPayID: id.Value,
	}
	if amount.GreaterThan(decimal.Zero) {
		p.Amount = amount.InexactFloat64()
		p.OneTime = true
	}

	out, err := p.Gen()
	if err != nil {
		return "", common.WrapError(err, "generate promptpay payload")
	}
	return out, nil
}
