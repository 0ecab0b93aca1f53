// Package synth produces random register numbers for test fixtures and
// sample data.
//
// A Source draws uniformly distributed birth dates and sequence numbers
// and feeds them through the codec, so every generated number carries a
// correct checksum and round-trips rrn.IsValid. Synthesis is a consumer
// of the codec, never part of its validation contract: nothing here is
// consulted when validating real input.
//
// Sources are deterministic for a fixed seed, which keeps generated
// fixtures reproducible across runs.
package synth

import (
	"math/rand"
	"sync"
	"time"

	"github.com/rijkslab/rrn"
	"github.com/rijkslab/rrn/errors"
)

// Source draws random birth dates and sequence numbers and encodes them
// into valid register numbers. A Source is safe for concurrent use: the
// underlying generator is guarded by a mutex.
type Source struct {
	mu      sync.Mutex
	rng     *rand.Rand
	timeNow func() time.Time // Injectable for testing
}

// New returns a deterministically seeded Source.
func New(seed int64) *Source {
	return NewWithClock(seed, time.Now)
}

// NewAuto returns a Source seeded from the current time. Use New with a
// fixed seed when fixtures must be reproducible.
func NewAuto() *Source {
	return New(time.Now().UnixNano())
}

// NewWithClock returns a deterministically seeded Source with an
// injectable clock (for testing).
func NewWithClock(seed int64, timeNow func() time.Time) *Source {
	return &Source{
		rng:     rand.New(rand.NewSource(seed)),
		timeNow: timeNow,
	}
}

// Number draws a register number with a birth date between the minimum
// registrable date and today.
func (s *Source) Number() (rrn.Number, error) {
	return s.NumberBetween(rrn.MinBirthDate, s.timeNow())
}

// NumberBetween draws a register number with a birth date in [min, max].
// Both bounds are truncated to their calendar date and are inclusive.
func (s *Source) NumberBetween(min, max time.Time) (rrn.Number, error) {
	birth, err := s.BirthDate(min, max)
	if err != nil {
		return "", err
	}
	return rrn.Encode(birth, s.Sequence())
}

// NumberWithSex draws a register number whose sequence field encodes the
// requested sex, with a birth date between the minimum registrable date
// and today.
func (s *Source) NumberWithSex(sex rrn.Sex) (rrn.Number, error) {
	return s.NumberBetweenWithSex(rrn.MinBirthDate, s.timeNow(), sex)
}

// NumberBetweenWithSex combines a birth-date range with a pinned sex.
func (s *Source) NumberBetweenWithSex(min, max time.Time, sex rrn.Sex) (rrn.Number, error) {
	birth, err := s.BirthDate(min, max)
	if err != nil {
		return "", err
	}
	return rrn.Encode(birth, s.SequenceWithSex(sex))
}

// BirthDate draws a calendar date uniformly from [min, max], inclusive
// of both bounds. The result is UTC midnight. Bounds are rejected with
// an out-of-range error when min precedes the minimum registrable date
// or exceeds max.
func (s *Source) BirthDate(min, max time.Time) (time.Time, error) {
	lo, hi := midnight(min), midnight(max)
	if lo.Before(rrn.MinBirthDate) {
		return time.Time{}, errors.NewOutOfRangeError("minimum birth date %s precedes %s",
			lo.Format("2006-01-02"), rrn.MinBirthDate.Format("2006-01-02"))
	}
	if lo.After(hi) {
		return time.Time{}, errors.NewOutOfRangeError("minimum birth date %s after maximum %s",
			lo.Format("2006-01-02"), hi.Format("2006-01-02"))
	}

	// Midnights in UTC are exact multiples of 24h apart, so this counts
	// calendar days without drift.
	days := int(hi.Sub(lo)/(24*time.Hour)) + 1

	s.mu.Lock()
	offset := s.rng.Intn(days)
	s.mu.Unlock()

	return lo.AddDate(0, 0, offset), nil
}

// Sequence draws a sequence number uniformly from
// [rrn.MinSequence, rrn.MaxSequence].
func (s *Source) Sequence() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return rrn.MinSequence + s.rng.Intn(rrn.MaxSequence-rrn.MinSequence+1)
}

// SequenceWithSex draws a sequence number whose final digit has the
// parity encoding the requested sex: even for female, odd for male.
func (s *Source) SequenceWithSex(sex rrn.Sex) int {
	seq := s.Sequence()
	if sexOf(seq) == sex {
		return seq
	}
	// Shift parity by one step without leaving the valid range.
	if seq == rrn.MaxSequence {
		return seq - 1
	}
	return seq + 1
}

// sexOf reads the sex a sequence number encodes. The last decimal digit
// of a base-10 integer has the integer's parity, so plain mod suffices.
func sexOf(seq int) rrn.Sex {
	if seq%2 == 0 {
		return rrn.Female
	}
	return rrn.Male
}

// midnight truncates t to UTC midnight of its calendar date.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
