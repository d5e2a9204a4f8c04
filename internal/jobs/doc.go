// Package jobs provides the process-wide tracker that parse workers share.
//
// The coordinator registers each worker before starting it, workers record
// every item they parse and complete exactly once on exit. Readers take a
// Snapshot, or block in Wait until the outstanding count drains to zero.
package jobs
