package reminder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractOrders(t *testing.T) {
	tests := []struct {
		name     string
		corpus   string
		expected []string
	}{
		{
			name:     "single order",
			corpus:   "please review C#12345",
			expected: []string{"C#12345"},
		},
		{
			name:     "dedup across case variants keeps first-seen order",
			corpus:   "c#1234 and C#1234 and c#1234",
			expected: []string{"C#1234"},
		},
		{
			name:     "multiple distinct orders preserve first-seen order",
			corpus:   "C#12345, c#12346 and C#12345",
			expected: []string{"C#12345", "C#12346"},
		},
		{
			name:     "four and five digit identifiers",
			corpus:   "C#9999 then C#10000",
			expected: []string{"C#9999", "C#10000"},
		},
		{
			name:     "too few digits ignored",
			corpus:   "C#123 is not an order",
			expected: nil,
		},
		{
			name:     "tokens inside structural json",
			corpus:   `{"elements":[{"text":"c#55555"}]}`,
			expected: []string{"C#55555"},
		},
		{
			name:     "no matches",
			corpus:   "nothing to see here",
			expected: nil,
		},
		{
			name:     "six digits matches first five",
			corpus:   "C#123456",
			expected: []string{"C#12345"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractOrders(tt.corpus))
		})
	}
}
