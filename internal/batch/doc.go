// Package batch runs one parse worker per document in an input directory and
// joins them into a single run summary.
//
// The Coordinator discovers documents, opens each one, registers a job with
// the shared jobs.Tracker and hands the open file to a goroutine. Workers own
// their feed record outright; the tracker is the only shared state. A run
// lock keeps two runs on the same machine from interleaving their output.
package batch
