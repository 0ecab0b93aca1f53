package rrn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name     string
		dividend int64
		want     int64
	}{
		{name: "spec example 1990-02-27 seq 421", dividend: 900227421, want: 91},
		{name: "post-1999 example 2000-01-01 seq 1", dividend: 2000101001, want: 5},
		{name: "remainder zero yields 97", dividend: 97, want: 97},
		{name: "zero dividend yields 97", dividend: 0, want: 97},
		{name: "remainder 96 yields 1", dividend: 96, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checksum(tt.dividend))
		})
	}
}

func TestPost1999Dividend(t *testing.T) {
	// Prefixing the digit 2 to a nine-digit slice adds exactly 2e9.
	assert.Equal(t, int64(2900227421), post1999Dividend(900227421))
	assert.Equal(t, int64(2000000000), post1999Dividend(0))
}

func TestPost1999DividendNeverCollides(t *testing.T) {
	// 2e9 mod 97 is nonzero, so the same nine digits can never satisfy
	// both century interpretations at once.
	assert.NotZero(t, post1999Prefix%checksumMod)
}

func TestMatchChecksum(t *testing.T) {
	tests := []struct {
		name        string
		digits      string
		wantCentury int
		wantOK      bool
	}{
		{name: "pre-2000 match", digits: "90022742191", wantCentury: 1900, wantOK: true},
		{name: "post-1999 match", digits: "00010100105", wantCentury: 2000, wantOK: true},
		{name: "same fields, pre-2000 checksum", digits: "00010100173", wantCentury: 1900, wantOK: true},
		{name: "off-by-one checksum", digits: "90022742192", wantOK: false},
		{name: "checksum matching neither", digits: "90022742100", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			century, ok := matchChecksum(tt.digits)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantCentury, century)
			}
		})
	}
}

func TestDigitsValue(t *testing.T) {
	assert.Equal(t, int64(0), digitsValue("000"))
	assert.Equal(t, int64(421), digitsValue("421"))
	assert.Equal(t, int64(900227421), digitsValue("900227421"))
	// Ten digits must not overflow; the largest post-1999 dividend is
	// 2_999_999_999 and fits comfortably in an int64.
	assert.Equal(t, int64(2999999999), digitsValue("2999999999"))
}
