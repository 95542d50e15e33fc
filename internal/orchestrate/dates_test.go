package orchestrate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeadline(t *testing.T) {
	want := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   string
	}{
		{"iso", "2026-09-15"},
		{"dmy dashes", "15-09-2026"},
		{"dmy slashes", "15/09/2026"},
		{"single digit day", "15-9-2026"},
		{"month name", "September 15, 2026"},
		{"month name no comma", "15 September 2026"},
		{"short month", "Sep 15, 2026"},
		{"deadline label", "Deadline: 15-09-2026"},
		{"apply before label", "Apply before September 15, 2026"},
		{"closing date label", "Closing date 2026-09-15"},
		{"embedded", "Applications close on 15/09/2026 at noon"},
		{"sentence punctuation", "15 September 2026."},
		{"label and punctuation", "Deadline: September 15, 2026."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDeadline(tt.in)
			require.NotNil(t, got, "input %q", tt.in)
			assert.True(t, got.Equal(want), "input %q parsed to %v", tt.in, got)
		})
	}
}

func TestParseDeadlineUnparseable(t *testing.T) {
	for _, in := range []string{
		"",
		"   ",
		"Ongoing",
		"Open until filled",
		"Deadline:",
		"next Friday",
		"32-13-2026",
	} {
		assert.Nil(t, ParseDeadline(in), "input %q", in)
	}
}

func TestParseDeadlineYMDRegex(t *testing.T) {
	got := ParseDeadline("due 2026/09/15")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC), *got)
}
