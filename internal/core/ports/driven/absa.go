package driven

import (
	"context"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
)

// AspectModel is the client port to an external ATEPC (aspect term
// extraction and polarity classification) model service. The model
// itself is consumed as a black box, never reimplemented.
type AspectModel interface {
	// Predict runs inference on a single text.
	Predict(ctx context.Context, text string) (domain.Prediction, error)

	// BatchPredict runs inference on a batch of texts. A failed
	// example yields a Prediction with its Error field set; the
	// batch itself only errors on transport failure.
	BatchPredict(ctx context.Context, texts []string) ([]domain.Prediction, error)

	// Train fine-tunes the model on the dataset directory and
	// returns the resulting checkpoint name.
	Train(ctx context.Context, datasetDir string) (string, error)

	// Checkpoints lists the available model checkpoints.
	Checkpoints(ctx context.Context) ([]Checkpoint, error)
}

// Checkpoint describes a trained model checkpoint.
type Checkpoint struct {
	// Name is the checkpoint identifier. Fine-tuned checkpoints embed
	// their polarity-classification F1 as "...apcf1_<score>...".
	Name string

	// APCF1 is the score parsed from the name, zero when absent.
	APCF1 float64
}
