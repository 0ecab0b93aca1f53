package rrn

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSex(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      Sex
		wantOK    bool
	}{
		{name: "odd sequence digit is male", candidate: "90022742191", want: Male, wantOK: true},
		{name: "even sequence digit is female", candidate: "85061532285", want: Female, wantOK: true},
		{name: "corrupt checksum still reads", candidate: "90022742100", want: Male, wantOK: true},
		{name: "empty", candidate: "", wantOK: false},
		{name: "blank", candidate: "           ", wantOK: false},
		{name: "punctuated form is not accepted", candidate: "90.02.27-421.91", wantOK: false},
		{name: "too short", candidate: "9002274219", wantOK: false},
		{name: "letter among digits", candidate: "9002274219a", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractSex(tt.candidate)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestExtractSexParityLaw(t *testing.T) {
	// Sex is the parity of digit 8 and nothing else.
	for seq := MinSequence; seq <= MaxSequence; seq += 37 {
		n, err := Encode(date(1980, time.March, 3), seq)
		require.NoError(t, err)

		sex, ok := ExtractSex(string(n))
		require.True(t, ok)

		even := (n[8]-'0')%2 == 0
		assert.Equal(t, even, sex == Female, "sequence %d encoded as %s", seq, n)
	}
}

func TestExtractBirthDate(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      time.Time
		wantOK    bool
	}{
		{
			name:      "pre-2000 checksum picks 1900s",
			candidate: "90022742191",
			want:      date(1990, time.February, 27),
			wantOK:    true,
		},
		{
			name:      "post-1999 checksum picks 2000s",
			candidate: "00010100105",
			want:      date(2000, time.January, 1),
			wantOK:    true,
		},
		{
			name:      "pre-2000 twin picks 1900s",
			candidate: "00010100173",
			want:      date(1900, time.January, 1),
			wantOK:    true,
		},
		{
			// The oracle is one-sided: when the pre-2000 checksum fails,
			// the year is 2000+YY even if the post-1999 checksum fails too.
			name:      "checksum matching neither falls back to 2000s",
			candidate: "90022742100",
			want:      date(2090, time.February, 27),
			wantOK:    true,
		},
		{
			// 1900 was no leap year, so a matching pre-2000 checksum on a
			// February 29 reading still lands in 2000.
			name:      "leap day with pre-2000 checksum lands in 2000",
			candidate: "00022912388",
			want:      date(2000, time.February, 29),
			wantOK:    true,
		},
		{name: "empty", candidate: "", wantOK: false},
		{name: "punctuated form is not accepted", candidate: "90.02.27-421.91", wantOK: false},
		{name: "month 13", candidate: "99133112345", wantOK: false},
		{name: "february 30", candidate: "99023012345", wantOK: false},
		{name: "too long", candidate: "900227421911", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractBirthDate(tt.candidate)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "want %s, got %s",
					tt.want.Format("2006-01-02"), got.Format("2006-01-02"))
				assert.Equal(t, time.UTC, got.Location())
			}
		})
	}
}

func TestExtractBirthDateDoesNotRequireValidity(t *testing.T) {
	// Extraction answers for invalid candidates; only IsValid rejects them.
	candidate := "90022742100"
	assert.False(t, IsValid(candidate))

	_, ok := ExtractBirthDate(candidate)
	assert.True(t, ok)
}
