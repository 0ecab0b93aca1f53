package rrn

import (
	"fmt"
	"time"

	"github.com/rijkslab/rrn/errors"
)

// MinBirthDate is the earliest birth date the register encodes.
var MinBirthDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// Encode builds the register number for a birth date and sequence number.
// Only the calendar date of birthDate matters; the time of day and zone
// are discarded.
//
// Unlike the read-side functions, Encode rejects bad parameters loudly:
// a birth date before MinBirthDate or a sequence outside
// [MinSequence, MaxSequence] returns an error wrapping errors.ErrOutOfRange
// that names the violated bound.
func Encode(birthDate time.Time, sequence int) (Number, error) {
	day := dateOnly(birthDate)
	if day.Before(MinBirthDate) {
		return "", errors.NewOutOfRangeError("birth date %s precedes minimum %s",
			day.Format("2006-01-02"), MinBirthDate.Format("2006-01-02"))
	}
	if sequence < MinSequence || sequence > MaxSequence {
		return "", errors.NewOutOfRangeError("sequence number %d outside [%d, %d]",
			sequence, MinSequence, MaxSequence)
	}

	leading := day.Format("060102") + fmt.Sprintf("%03d", sequence)
	dividend := digitsValue(leading)
	if day.Year() >= 2000 {
		dividend = post1999Dividend(dividend)
	}
	return Number(fmt.Sprintf("%s%02d", leading, checksum(dividend))), nil
}
