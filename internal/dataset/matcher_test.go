package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
)

func testLexicon(terms ...string) *Lexicon {
	lex := DefaultLexicon()
	if len(terms) > 0 {
		lex.AspectTerms = terms
	}
	lex.Compile()
	return lex
}

func TestMatchAspects_LongestMatchWins(t *testing.T) {
	lex := testLexicon("property", "intellectual property")
	tokens := Tokenize("they stole intellectual property from the lab")

	spans := MatchAspects(tokens, lex)

	require.Len(t, spans, 1)
	assert.Equal(t, "intellectual property", spans[0].Text)
	assert.Equal(t, 2, spans[0].Start)
	assert.Equal(t, 4, spans[0].End)
}

func TestMatchAspects_CaseInsensitive(t *testing.T) {
	lex := testLexicon("firewall")
	spans := MatchAspects(Tokenize("The FIREWALL failed"), lex)

	require.Len(t, spans, 1)
	assert.Equal(t, "FIREWALL", spans[0].Text, "surface form is preserved")
}

func TestMatchAspects_MultipleSpansInOrder(t *testing.T) {
	lex := testLexicon("firewall", "network")
	spans := MatchAspects(Tokenize("the firewall guards the network"), lex)

	require.Len(t, spans, 2)
	assert.Equal(t, "firewall", spans[0].Text)
	assert.Equal(t, "network", spans[1].Text)
	assert.Less(t, spans[0].End, spans[1].Start)
}

func TestMatchAspects_NoOverlap(t *testing.T) {
	lex := testLexicon("data breach", "breach")
	spans := MatchAspects(Tokenize("the data breach was severe"), lex)

	require.Len(t, spans, 1)
	assert.Equal(t, "data breach", spans[0].Text)
}

func TestMatchAspects_NoMatches(t *testing.T) {
	lex := testLexicon("firewall")
	assert.Nil(t, MatchAspects(Tokenize("nothing to see here"), lex))
}

func TestAssignSentiment(t *testing.T) {
	lex := testLexicon()
	span := domain.AspectSpan{Start: 1, End: 2, Text: "firewall"}

	tests := []struct {
		name     string
		sentence string
		want     domain.Sentiment
	}{
		{
			name:     "negative cues dominate",
			sentence: "the firewall was breached and credentials were stolen",
			want:     domain.SentimentNegative,
		},
		{
			name:     "positive cues dominate",
			sentence: "the firewall successfully blocked the traffic",
			want:     domain.SentimentPositive,
		},
		{
			name:     "no cues defaults to neutral",
			sentence: "the firewall sits between two subnets",
			want:     domain.SentimentNeutral,
		},
		{
			name:     "tie defaults to neutral",
			sentence: "the firewall was breached then patched",
			want:     domain.SentimentNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.sentence)
			assert.Equal(t, tt.want, AssignSentiment(tokens, span, lex))
		})
	}
}

func TestAssignSentiment_WindowBounds(t *testing.T) {
	lex := testLexicon()
	lex.Window = 2
	lex.Compile()

	// "breached" is 3 tokens past the span end, outside the window.
	tokens := []string{"the", "firewall", "a", "b", "c", "breached"}
	span := domain.AspectSpan{Start: 1, End: 2}

	assert.Equal(t, domain.SentimentNeutral, AssignSentiment(tokens, span, lex))
}
