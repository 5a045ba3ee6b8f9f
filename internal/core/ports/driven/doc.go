// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the pipeline to function:
//
//   - Collector: Fetches raw incident reports from a source
//   - RawDocumentStore: Raw document persistence
//   - DocumentStore: Cleaned corpus persistence
//   - EvaluationStore: Evaluation run persistence
//   - SentenceSegmenter: Language-aware sentence boundary detection
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the affected stages degrade gracefully:
//
//   - AspectModel: ATEPC model service client. Without it, baseline
//     extraction, training and evaluation are disabled.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or collector package
package driven
