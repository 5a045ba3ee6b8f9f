package domain

// Split names a dataset partition.
type Split string

const (
	// SplitTrain is the training partition.
	SplitTrain Split = "train"

	// SplitValid is the validation partition.
	SplitValid Split = "valid"

	// SplitTest is the held-out test partition.
	SplitTest Split = "test"
)

// Filename returns the on-disk name of the split file.
func (s Split) Filename() string {
	return string(s) + ".dat.atepc"
}

// SplitRatio fixes the train/valid proportions at dataset construction
// time. The test share is whatever remains.
type SplitRatio struct {
	Train float64
	Valid float64
}

// DefaultSplitRatio is the documented 70/15/15 partition.
var DefaultSplitRatio = SplitRatio{Train: 0.70, Valid: 0.15}

// DatasetSplit is a named partition of annotated sentences. Splits are
// disjoint at the sentence level; a sentence belongs to exactly one.
type DatasetSplit struct {
	Name      Split
	Sentences []AnnotatedSentence
}

// DatasetStats summarizes a dataset build for reporting. It is
// persisted alongside the split files so the completion report can
// load it later.
type DatasetStats struct {
	// DocumentsProcessed is the number of corpus documents consumed.
	DocumentsProcessed int `json:"documents_processed"`

	// SentencesEmitted counts sentences written across all splits.
	SentencesEmitted int `json:"sentences_emitted"`

	// SkippedTooLong counts sentences dropped for exceeding the
	// maximum token length.
	SkippedTooLong int `json:"skipped_too_long"`

	// SkippedNoAspects counts sentences with no matched aspect terms.
	SkippedNoAspects int `json:"skipped_no_aspects"`

	// SkippedShort counts documents dropped for being too short.
	SkippedShort int `json:"skipped_short"`

	// SplitSizes records the sentence count per split.
	SplitSizes map[Split]int `json:"split_sizes"`
}
