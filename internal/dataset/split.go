package dataset

import (
	"math/rand"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
)

// DefaultSeed fixes the shuffle so dataset builds are reproducible.
const DefaultSeed = 42

// Partition shuffles sentences deterministically and cuts them into
// train/valid/test. Sizes are floor(ratio*n) for train and valid with
// the remainder going to test, so a 1000-sentence corpus at 70/15
// yields exactly 700/150/150. The input slice is not modified.
func Partition(sentences []domain.AnnotatedSentence, ratio domain.SplitRatio, seed int64) []domain.DatasetSplit {
	shuffled := make([]domain.AnnotatedSentence, len(sentences))
	copy(shuffled, sentences)

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	trainEnd := int(ratio.Train * float64(len(shuffled)))
	validEnd := trainEnd + int(ratio.Valid*float64(len(shuffled)))

	return []domain.DatasetSplit{
		{Name: domain.SplitTrain, Sentences: shuffled[:trainEnd]},
		{Name: domain.SplitValid, Sentences: shuffled[trainEnd:validEnd]},
		{Name: domain.SplitTest, Sentences: shuffled[validEnd:]},
	}
}
