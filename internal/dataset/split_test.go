package dataset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
)

func makeSentences(n int) []domain.AnnotatedSentence {
	out := make([]domain.AnnotatedSentence, n)
	for i := range out {
		token := fmt.Sprintf("token%d", i)
		out[i] = domain.AnnotatedSentence{
			Tokens: []string{token},
			Tags:   []string{domain.TagBegin},
			Labels: []string{"0"},
		}
	}
	return out
}

func TestPartition_ExactSizes(t *testing.T) {
	splits := Partition(makeSentences(1000), domain.DefaultSplitRatio, DefaultSeed)

	require.Len(t, splits, 3)
	assert.Equal(t, domain.SplitTrain, splits[0].Name)
	assert.Len(t, splits[0].Sentences, 700)
	assert.Equal(t, domain.SplitValid, splits[1].Name)
	assert.Len(t, splits[1].Sentences, 150)
	assert.Equal(t, domain.SplitTest, splits[2].Name)
	assert.Len(t, splits[2].Sentences, 150)
}

func TestPartition_DisjointAndComplete(t *testing.T) {
	total := 97
	splits := Partition(makeSentences(total), domain.DefaultSplitRatio, DefaultSeed)

	seen := make(map[string]domain.Split)
	count := 0
	for _, split := range splits {
		for _, sentence := range split.Sentences {
			key := sentence.Tokens[0]
			if prior, dup := seen[key]; dup {
				t.Fatalf("sentence %s in both %s and %s", key, prior, split.Name)
			}
			seen[key] = split.Name
			count++
		}
	}
	assert.Equal(t, total, count)
}

func TestPartition_Deterministic(t *testing.T) {
	a := Partition(makeSentences(50), domain.DefaultSplitRatio, DefaultSeed)
	b := Partition(makeSentences(50), domain.DefaultSplitRatio, DefaultSeed)

	assert.Equal(t, a, b)

	c := Partition(makeSentences(50), domain.DefaultSplitRatio, DefaultSeed+1)
	assert.NotEqual(t, a, c, "different seed reorders the shuffle")
}

func TestPartition_DoesNotMutateInput(t *testing.T) {
	in := makeSentences(20)
	first := in[0].Tokens[0]

	Partition(in, domain.DefaultSplitRatio, DefaultSeed)
	assert.Equal(t, first, in[0].Tokens[0])
}

func TestPartition_Empty(t *testing.T) {
	splits := Partition(nil, domain.DefaultSplitRatio, DefaultSeed)
	require.Len(t, splits, 3)
	for _, split := range splits {
		assert.Empty(t, split.Sentences)
	}
}
