// Package rrn implements the Belgian national register number
// (rijksregisternummer / numéro de registre national), the 11-digit
// identifier assigned to every person registered in Belgium.
//
// A register number packs three fields and a checksum into its digits:
//
//	[birth year: 2][birth month: 2][birth day: 2][sequence: 3][check: 2]
//
// The sequence number distinguishes people born on the same day and
// encodes sex in its parity: odd for males, even for females. The check
// digits are 97 minus the leading nine digits modulo 97 — except that for
// births in 2000 or later the nine digits are prefixed with a 2 before
// dividing. The two-digit year alone cannot tell 1901 from 2001; only
// checksum agreement decides the century.
//
// Validation accepts punctuated input ("90.02.27-421.91") by stripping
// every non-digit first. Field extraction deliberately does not require a
// valid checksum: the sex and birth-date readers answer for any 11-digit
// candidate, so corrupt check digits never hide the fields that are
// still legible.
package rrn

import (
	"strings"
	"time"

	"github.com/rijkslab/rrn/errors"
)

const (
	// numberLength is the digit count of a register number.
	numberLength = 11

	// MinSequence and MaxSequence bound the sequence field. Sequence
	// numbers are assigned per birth date; 000 and 999 are reserved.
	MinSequence = 1
	MaxSequence = 998
)

// Number is a validated register number: exactly 11 decimal digits with a
// checksum that matches one of the two century interpretations. Construct
// one with Parse or Encode; the field accessors assume that shape.
type Number string

// String returns the bare 11-digit form.
func (n Number) String() string { return string(n) }

// Formatted returns the conventional display form YY.MM.DD-XXX.CC.
func (n Number) Formatted() string { return Format(string(n)) }

// Sequence returns the three-digit sequence field as an integer.
func (n Number) Sequence() int { return int(digitsValue(string(n)[6:9])) }

// Sex returns the sex encoded by the sequence field's parity.
func (n Number) Sex() Sex {
	s, _ := ExtractSex(string(n))
	return s
}

// BirthDate returns the birth date at UTC midnight, using the checksum to
// pick the century.
func (n Number) BirthDate() time.Time {
	d, _ := ExtractBirthDate(string(n))
	return d
}

// Sex is the sex a register number encodes in its sequence field.
type Sex int

const (
	// Female is encoded by an even sequence number.
	Female Sex = iota
	// Male is encoded by an odd sequence number.
	Male
)

// String returns "female" or "male".
func (s Sex) String() string {
	if s == Male {
		return "male"
	}
	return "female"
}

// Parse strips formatting from candidate and returns it as a Number.
// It accepts anything IsValid accepts and reports why everything else is
// rejected: errors.ErrMalformed for candidates without the shape of a
// register number, errors.ErrChecksum for well-shaped candidates whose
// check digits match neither century.
func Parse(candidate string) (Number, error) {
	digits := Normalize(candidate)
	if len(digits) != numberLength {
		return "", errors.NewMalformedError("want %d digits, got %d", numberLength, len(digits))
	}
	if _, _, _, ok := parseBirthField(digits); !ok {
		return "", errors.NewMalformedError("leading digits %s do not form a YYMMDD date", digits[:6])
	}
	if _, ok := matchChecksum(digits); !ok {
		return "", errors.NewChecksumError("check digits %s match neither century interpretation of %s",
			digits[9:], digits[:9])
	}
	return Number(digits), nil
}

// Normalize strips every character that is not an ASCII digit,
// reducing punctuated display forms like "90.02.27-421.91" to the bare
// digit string the codec operates on. It makes no length or validity
// promise about the result.
func Normalize(candidate string) string {
	var b strings.Builder
	b.Grow(numberLength)
	for i := 0; i < len(candidate); i++ {
		if candidate[i] >= '0' && candidate[i] <= '9' {
			b.WriteByte(candidate[i])
		}
	}
	return b.String()
}

// isDigits reports whether s is non-empty and all ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// digitsValue interprets a digits-only string as a base-10 integer.
// Callers guarantee the input is short enough not to overflow.
func digitsValue(s string) int64 {
	var v int64
	for i := 0; i < len(s); i++ {
		v = v*10 + int64(s[i]-'0')
	}
	return v
}

// parseBirthField reads the first six digits of an 11-digit candidate as
// YYMMDD. The century is undecidable this early, so day validity is probed
// against year 2000+YY, which admits February 29 exactly when YY is a
// multiple of four.
func parseBirthField(digits string) (yy, mm, dd int, ok bool) {
	yy = int(digitsValue(digits[0:2]))
	mm = int(digitsValue(digits[2:4]))
	dd = int(digitsValue(digits[4:6]))
	if mm < 1 || mm > 12 || dd < 1 || dd > 31 {
		return 0, 0, 0, false
	}
	probe := time.Date(2000+yy, time.Month(mm), dd, 0, 0, 0, 0, time.UTC)
	if probe.Month() != time.Month(mm) || probe.Day() != dd {
		return 0, 0, 0, false
	}
	return yy, mm, dd, true
}

// dateOnly truncates t to UTC midnight of its calendar date. The register
// encodes dates, not instants, so zone offsets must not shift the day.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
