package domain

import "time"

// Prediction is the model output for a single example.
type Prediction struct {
	// Text is the input sentence.
	Text string `json:"text"`

	// Aspects are the extracted aspect terms.
	Aspects []string `json:"aspects"`

	// Sentiments holds one polarity per extracted aspect.
	Sentiments []Sentiment `json:"sentiments"`

	// Confidences holds one confidence score per extracted aspect.
	Confidences []float64 `json:"confidences"`

	// Error records a per-example inference failure. Failed examples
	// are counted, never fatal to the batch.
	Error string `json:"error,omitempty"`
}

// Failed reports whether inference failed for this example.
func (p Prediction) Failed() bool {
	return p.Error != ""
}

// SentimentDistribution counts aspects per polarity class.
type SentimentDistribution map[Sentiment]int

// EvaluationReport aggregates model predictions over a corpus or
// held-out split into corpus-level statistics.
type EvaluationReport struct {
	// Checkpoint identifies the model checkpoint that was evaluated.
	Checkpoint string `json:"checkpoint"`

	// APCF1 is the polarity-classification F1 embedded in the
	// checkpoint name, when available.
	APCF1 float64 `json:"apc_f1"`

	// TotalExamples is the number of examples submitted.
	TotalExamples int `json:"total_examples"`

	// TotalAspects is the number of aspects extracted across all
	// successful examples.
	TotalAspects int `json:"total_aspects"`

	// AverageAspects is TotalAspects over successful examples.
	AverageAspects float64 `json:"average_aspects_per_example"`

	// ErrorCount is the number of examples whose inference failed.
	ErrorCount int `json:"error_count"`

	// Distribution counts extracted aspects per sentiment class.
	Distribution SentimentDistribution `json:"sentiment_distribution"`

	// Predictions holds the per-example details.
	Predictions []Prediction `json:"results"`

	// CreatedAt is when the evaluation ran.
	CreatedAt time.Time `json:"created_at"`
}

// SuccessRate returns the fraction of examples that produced a
// prediction, in [0, 1]. Zero examples yields zero.
func (r EvaluationReport) SuccessRate() float64 {
	if r.TotalExamples == 0 {
		return 0
	}
	return float64(r.TotalExamples-r.ErrorCount) / float64(r.TotalExamples)
}

// ClassPercent returns the share of extracted aspects carrying the
// given sentiment, in percent.
func (r EvaluationReport) ClassPercent(s Sentiment) float64 {
	if r.TotalAspects == 0 {
		return 0
	}
	return float64(r.Distribution[s]) / float64(r.TotalAspects) * 100
}
