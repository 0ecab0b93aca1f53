package rrn

import (
	"fmt"
	"time"
)

// ExtractSex reads the sex encoded in candidate's sequence field.
//
// The candidate must be exactly 11 digits, bare of formatting; anything
// else reports false. The checksum is deliberately not consulted: sex
// lives entirely in the parity of digit 8, so it stays readable even
// when the check digits are corrupt. Callers who need certainty should
// run IsValid first.
func ExtractSex(candidate string) (Sex, bool) {
	if len(candidate) != numberLength || !isDigits(candidate) {
		return Female, false
	}
	if (candidate[8]-'0')%2 == 0 {
		return Female, true
	}
	return Male, true
}

// ExtractBirthDate reads the birth date encoded in candidate's leading
// six digits, using the checksum as a century oracle.
//
// The candidate must be exactly 11 digits and its leading field must
// form a YYMMDD date; anything else reports false. The century is
// guessed, not proven: if the check digits match the pre-2000
// interpretation the year is 1900+YY, otherwise 2000+YY — even when
// the post-1999 checksum would not match either. Extraction is a
// best-effort read of a possibly invalid candidate; only IsValid
// decides validity.
func ExtractBirthDate(candidate string) (time.Time, bool) {
	if len(candidate) != numberLength || !isDigits(candidate) {
		return time.Time{}, false
	}
	yy, mm, dd, ok := parseBirthField(candidate)
	if !ok {
		return time.Time{}, false
	}

	year := 2000 + yy
	if fmt.Sprintf("%02d", checksum(digitsValue(candidate[:9]))) == candidate[9:] {
		year = 1900 + yy
	}

	date := time.Date(year, time.Month(mm), dd, 0, 0, 0, 0, time.UTC)
	if date.Day() != dd {
		// February 29 with YY=00: 1900 was no leap year, 2000 was.
		date = time.Date(2000+yy, time.Month(mm), dd, 0, 0, 0, 0, time.UTC)
	}
	return date, true
}
