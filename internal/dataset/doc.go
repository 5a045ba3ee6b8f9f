// Package dataset builds the custom aspect-term-extraction corpus:
// sentences are segmented, scanned for configured cybersecurity aspect
// terms, labeled with heuristic sentiment from surrounding cue words,
// tagged in IOB form, partitioned into deterministic train/valid/test
// splits and serialized in the token-per-line .dat.atepc format.
package dataset
