// Package report formats the per-document lines, the closing summary and the
// optional summary table printed by a batch run.
package report
