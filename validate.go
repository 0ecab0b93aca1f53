package rrn

// IsValid reports whether candidate is a well-formed register number.
//
// Formatting characters are ignored: every non-digit is stripped before
// checking, so "90.02.27-421.91" and "90022742191" validate identically.
// After stripping, the candidate must be exactly 11 digits, its leading
// six digits must form a plausible YYMMDD date, and its check digits must
// match at least one century interpretation.
//
// Malformed input is never an error, merely false.
func IsValid(candidate string) bool {
	digits := Normalize(candidate)
	if len(digits) != numberLength {
		return false
	}
	if _, _, _, ok := parseBirthField(digits); !ok {
		return false
	}
	_, ok := matchChecksum(digits)
	return ok
}
