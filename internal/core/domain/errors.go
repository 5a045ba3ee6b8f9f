package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown collector or file format.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrEmptyCorpus indicates a stage was run against an empty corpus.
	// The preceding pipeline stage has probably not been run yet.
	ErrEmptyCorpus = errors.New("empty corpus")

	// ErrModelUnavailable indicates the ATEPC model service is not
	// configured or not reachable. Baseline extraction, training and
	// evaluation are disabled without it.
	ErrModelUnavailable = errors.New("model service unavailable")

	// ErrNoCheckpoint indicates no trained checkpoint is available
	// for evaluation.
	ErrNoCheckpoint = errors.New("no checkpoint available")

	// ErrSentenceTooLong indicates a sentence exceeded the maximum
	// token length and was skipped by the dataset builder.
	ErrSentenceTooLong = errors.New("sentence exceeds maximum token length")

	// ErrLabelMismatch indicates an annotated sentence whose token,
	// IOB tag and sentiment label counts disagree.
	ErrLabelMismatch = errors.New("token, tag and label counts differ")

	// ErrDanglingInsideTag indicates an I-ASP tag that does not follow
	// a B-ASP or I-ASP tag within the same span.
	ErrDanglingInsideTag = errors.New("I-ASP tag opens a span")

	// ErrRateLimited indicates a source's rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
