package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "trailing period becomes its own token",
			input: "access to the network.",
			want:  []string{"access", "to", "the", "network", "."},
		},
		{
			name:  "hyphenated terms stay whole",
			input: "a denial-of-service attack",
			want:  []string{"a", "denial-of-service", "attack"},
		},
		{
			name:  "internal periods survive",
			input: "upgrade to 2.4.1 now",
			want:  []string{"upgrade", "to", "2.4.1", "now"},
		},
		{
			name:  "parentheses and commas peel off",
			input: "servers (all of them), patched",
			want:  []string{"servers", "(", "all", "of", "them", ")", ",", "patched"},
		},
		{
			name:  "empty input",
			input: "   ",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}
