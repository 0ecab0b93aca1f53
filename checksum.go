package rrn

// checksumMod is the modulus of the register number check digits.
const checksumMod = 97

// post1999Prefix is the value the digit 2 adds when prepended to a
// nine-digit dividend, turning it into the ten-digit base used for
// births in 2000 and later.
const post1999Prefix = 2_000_000_000

// checksum returns 97 minus dividend modulo 97, the value of the two
// check digits. The result is in [1, 97].
func checksum(dividend int64) int64 {
	return checksumMod - dividend%checksumMod
}

// post1999Dividend converts a nine-digit dividend to its post-1999 form.
// The two dividends always disagree modulo 97 (2e9 mod 97 is 68, not 0),
// so the two century interpretations can never both match.
func post1999Dividend(dividend int64) int64 {
	return post1999Prefix + dividend
}

// matchChecksum compares the trailing check digits of an 11-digit
// candidate against both century interpretations of its leading nine
// digits, and reports which century matched: 1900, 2000, or neither.
func matchChecksum(digits string) (century int, ok bool) {
	dividend := digitsValue(digits[:9])
	check := digitsValue(digits[9:])
	if checksum(dividend) == check {
		return 1900, true
	}
	if checksum(post1999Dividend(dividend)) == check {
		return 2000, true
	}
	return 0, false
}
