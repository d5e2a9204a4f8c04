package batch

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"feedtally/internal/config"
	"feedtally/internal/feed"
	"feedtally/internal/logging"
	"feedtally/internal/report"
	"feedtally/internal/xmlevent"
)

// Result is what a worker hands back to the coordinator when it ends.
type Result struct {
	Document string
	JobID    string
	Summary  feed.Summary
	Err      error
	Skipped  bool
	Duration time.Duration
}

// Status labels the result for the summary table.
func (r Result) Status() string {
	switch {
	case r.Skipped:
		return "skipped"
	case r.Err != nil:
		return "failed"
	default:
		return "ok"
	}
}

// Rows converts results into summary table rows.
func Rows(results []Result) []report.Row {
	rows := make([]report.Row, 0, len(results))
	for _, res := range results {
		row := report.Row{
			Document:  filepath.Base(res.Document),
			Title:     res.Summary.Title,
			Items:     res.Summary.Items,
			LiveItems: res.Summary.LiveItems,
			Status:    res.Status(),
		}
		if !res.Skipped {
			row.Duration = res.Duration.Round(time.Microsecond).String()
		}
		rows = append(rows, row)
	}
	return rows
}

type worker struct {
	jobID    string
	path     string
	parser   config.Parser
	tracker  feed.ItemCounter
	reporter *report.Reporter
	logger   *slog.Logger
}

// run parses one document and prints its line. Failures stay local to the
// document.
func (w worker) run(ctx context.Context, r io.Reader) Result {
	started := time.Now()
	logger := logging.WithContext(logging.WithJob(ctx, w.jobID, w.path), w.logger)

	src := xmlevent.NewSource(r,
		xmlevent.WithCharsetFallback(w.parser.CharsetFallback),
		xmlevent.WithHTMLEntities(w.parser.HTMLEntities),
	)
	doc, err := feed.Parse(src, w.tracker)
	summary := doc.Summary()
	res := Result{
		Document: w.path,
		JobID:    w.jobID,
		Summary:  summary,
		Err:      err,
		Duration: time.Since(started),
	}

	if err != nil {
		w.reporter.Failed(summary.Title, err)
		logging.WarnWithContext(logger, "document parse failed", "document_malformed",
			logging.String("partial_title", summary.Title),
			logging.Int("items", summary.Recorded()),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "validate the document as XML"),
			logging.String(logging.FieldImpact, "items before the error are still counted"),
		)
		return res
	}

	w.reporter.Completed(summary)
	logger.Debug("document parsed",
		logging.String("title", summary.Title),
		logging.Int("items", summary.Items),
		logging.Int("live_items", summary.LiveItems),
		logging.Duration("elapsed", res.Duration),
	)
	return res
}
