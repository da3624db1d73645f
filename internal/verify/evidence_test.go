package verify

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slipverify/internal/identifier"
)

var phoneID = identifier.Classify("0812345678")

func TestIdentifierEvidenceShapes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "masked", text: "โอนเงินสำเร็จ 140-xxxxxxxx-7315 จำนวน", want: true},
		{name: "masked uppercase", text: "140-XXXXXXXXX-7315", want: true},
		{name: "masked mixed digits", text: "140-12xx56x89-7315", want: true},
		{name: "full with hyphens", text: "ref 140-123456789-7315 end", want: true},
		{name: "full without hyphens", text: "1401234567897315", want: true},
		{name: "grouped", text: "ไปยัง 14000-123-456-7890", want: true},
		{name: "bare 15 digit", text: "140001234567890", want: true},
		{name: "no wallet anywhere", text: "โอนเงิน 100 บาท เรียบร้อย", want: false},
		{name: "masked too few chars", text: "140-xxxxxxx-7315", want: false},
		{name: "empty text", text: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IdentifierEvidence(tt.text, phoneID))
		})
	}
}

func TestIdentifierEvidenceSubstringFallback(t *testing.T) {
	// No wallet shape in the text; only the normalized substring matches.
	assert.True(t, IdentifierEvidence("โอนไปที่ 081-234-5678 แล้ว", phoneID))
	assert.True(t, IdentifierEvidence("086 123 4567", identifier.Classify("0861234567")))
	assert.False(t, IdentifierEvidence("081-234-5679", phoneID))
}

// The five shape patterns accept any plausible wallet rendering, even one
// unrelated to the expected identifier. This leniency is part of the
// observed contract; do not tighten it to an equality check.
func TestIdentifierEvidenceShapeMatchesRegardlessOfExpected(t *testing.T) {
	assert.True(t, IdentifierEvidence("140001234567890", phoneID))
	assert.True(t, IdentifierEvidence("140-xxxxxxxx-7315", identifier.Classify("140009999999999")))
}

// No pattern anchors to start or end of input, so evidence must survive
// embedding the matching text in arbitrary surroundings.
func TestIdentifierEvidenceMonotonicUnderEmbedding(t *testing.T) {
	core := "140-xxxxxxxx-7315"
	require.True(t, IdentifierEvidence(core, phoneID))
	assert.True(t, IdentifierEvidence("garbage before "+core+" garbage after", phoneID))
	assert.True(t, IdentifierEvidence("line1\n"+core+"\nline3", phoneID))
}

func TestAmountEvidence(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{name: "thai unit", text: "จำนวน 150.50 บาท", want: "150.50", found: true},
		{name: "thb unit", text: "Total 1500 THB", want: "1500.00", found: true},
		{name: "thb lowercase", text: "29.9 thb", want: "29.90", found: true},
		{name: "no space before unit", text: "100บาท", want: "100.00", found: true},
		{name: "integer amount", text: "โอน 42 บาท", want: "42.00", found: true},
		{name: "zero amount", text: "0.00 บาท", want: "0.00", found: true},
		{name: "amount on later line", text: "โอนเงินสำเร็จ\nรายการที่ 555\nยอด 99.99 บาท\n", want: "99.99", found: true},
		{name: "first matching line wins", text: "10 บาท\n20 บาท", want: "10.00", found: true},
		{name: "no unit anywhere", text: "โอนเงิน 150.50 เรียบร้อย", found: false},
		{name: "unit without number", text: "บาท", found: false},
		{name: "empty", text: "", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := AmountEvidence(tt.text)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.True(t, decimal.RequireFromString(tt.want).Equal(got),
					"want %s got %s", tt.want, got)
			}
		})
	}
}

func TestAmountEvidenceLineFallback(t *testing.T) {
	// Unit separated from the number by a newline: the whole-text pass
	// tolerates it via \s*, and the per-line fallback still finds the
	// amount when a line carries both.
	text := "ยอดรวม\n150.50 บาท\n"
	got, found := AmountEvidence(text)
	require.True(t, found)
	assert.True(t, got.Equal(decimal.RequireFromString("150.50")))
}
