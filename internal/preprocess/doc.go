// Package preprocess turns collected raw documents into the unified
// analysis corpus. Text is normalized and cleaned, documents that are
// too short or duplicate an earlier document are dropped, and matched
// cybersecurity terms are recorded for downstream stages.
package preprocess
