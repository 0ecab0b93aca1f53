package rrn

// Format punctuates an 11-character candidate into the conventional
// display form YY.MM.DD-XXX.CC. Input of any other length — including
// empty or already punctuated — is returned unchanged.
//
// Formatting is purely structural: no digit or checksum validation
// happens here, so 11 characters of nonsense are punctuated just as
// readily as a real register number.
func Format(candidate string) string {
	if len(candidate) != numberLength {
		return candidate
	}
	return candidate[0:2] + "." + candidate[2:4] + "." + candidate[4:6] +
		"-" + candidate[6:9] + "." + candidate[9:11]
}
