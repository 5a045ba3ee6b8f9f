package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPrediction_Failed tests per-example failure detection
func TestPrediction_Failed(t *testing.T) {
	ok := Prediction{Text: "some text", Aspects: []string{"malware"}}
	assert.False(t, ok.Failed())

	failed := Prediction{Text: "oversized input", Error: "sequence too long"}
	assert.True(t, failed.Failed())
}

// TestEvaluationReport_SuccessRate tests the success-rate computation
func TestEvaluationReport_SuccessRate(t *testing.T) {
	r := EvaluationReport{TotalExamples: 20, ErrorCount: 2}
	assert.InDelta(t, 0.9, r.SuccessRate(), 1e-9)

	empty := EvaluationReport{}
	assert.Zero(t, empty.SuccessRate())
}

// TestEvaluationReport_ClassPercent tests per-class percentages
func TestEvaluationReport_ClassPercent(t *testing.T) {
	r := EvaluationReport{
		TotalAspects: 10,
		Distribution: SentimentDistribution{
			SentimentNegative: 6,
			SentimentNeutral:  3,
			SentimentPositive: 1,
		},
	}

	assert.InDelta(t, 60.0, r.ClassPercent(SentimentNegative), 1e-9)
	assert.InDelta(t, 30.0, r.ClassPercent(SentimentNeutral), 1e-9)
	assert.InDelta(t, 10.0, r.ClassPercent(SentimentPositive), 1e-9)

	empty := EvaluationReport{}
	assert.Zero(t, empty.ClassPercent(SentimentNegative))
}

// TestSplit_Filename tests split file naming
func TestSplit_Filename(t *testing.T) {
	assert.Equal(t, "train.dat.atepc", SplitTrain.Filename())
	assert.Equal(t, "valid.dat.atepc", SplitValid.Filename())
	assert.Equal(t, "test.dat.atepc", SplitTest.Filename())
}
