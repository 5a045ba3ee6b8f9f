// Package memory provides in-memory implementations of the storage
// ports. Nothing is persisted; data is lost when the process exits.
// Intended for tests and throwaway pipeline runs.
package memory
