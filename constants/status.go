package constants

// VerificationStatus is the canonical outcome for rows in verifications.
type VerificationStatus string

// Stable values (store these exact strings in DB).
const (
	StatusSuccess     VerificationStatus = "SUCCESS"      // identifier and positive amount found
	StatusNoRecipient VerificationStatus = "NO_RECIPIENT" // no recipient identifier evidence in text
	StatusNoAmount    VerificationStatus = "NO_AMOUNT"    // identifier found but no positive amount
)
