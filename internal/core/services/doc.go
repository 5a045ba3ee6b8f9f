// Package services implements the driving port interfaces.
// Services contain the pipeline's orchestration logic: each stage reads
// the prior stage's persisted output through driven ports, applies the
// stage transformation and persists its own output.
package services
