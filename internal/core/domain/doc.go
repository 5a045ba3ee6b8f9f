// Package domain defines the core business entities for SecLens.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawDocument: A collected incident report before cleaning
//   - Document: A cleaned, deduplicated corpus unit
//   - AspectSpan: A token range identified as a cybersecurity aspect
//   - AnnotatedSentence: Tokens with parallel IOB and sentiment labels
//   - Topic: A discovered corpus cluster
//   - EvaluationReport: Corpus-level model evaluation results
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
