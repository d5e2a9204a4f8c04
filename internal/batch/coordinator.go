package batch

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"feedtally/internal/config"
	"feedtally/internal/jobs"
	"feedtally/internal/logging"
	"feedtally/internal/report"
)

// Totals summarises a finished run.
type Totals struct {
	Documents  int
	Succeeded  int
	Failed     int
	Skipped    int
	TotalItems int
}

// Coordinator drives one batch run over cfg.Paths.InputDir.
type Coordinator struct {
	cfg      *config.Config
	logger   *slog.Logger
	reporter *report.Reporter
	tracker  *jobs.Tracker
}

// NewCoordinator wires a coordinator. A nil logger discards logs.
func NewCoordinator(cfg *config.Config, logger *slog.Logger, reporter *report.Reporter) (*Coordinator, error) {
	if cfg == nil || reporter == nil {
		return nil, errors.New("coordinator requires config and reporter")
	}
	return &Coordinator{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "batch"),
		reporter: reporter,
		tracker:  jobs.New(),
	}, nil
}

// Tracker exposes the run's job tracker.
func (c *Coordinator) Tracker() *jobs.Tracker {
	return c.tracker
}

// Run parses every discovered document concurrently and blocks until all
// workers finish. Per-document failures are reported and counted; only
// discovery, locking and (with skip_unreadable off) open failures are
// returned as errors.
func (c *Coordinator) Run(ctx context.Context) (Totals, error) {
	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, c.logger)

	lock, err := acquireRunLock(c.cfg.Paths.LockPath)
	if err != nil {
		return Totals{}, err
	}
	defer lock.release(logger)

	dir := c.cfg.Paths.InputDir
	docs, err := Discover(dir, c.cfg.Batch.Extensions)
	if err != nil {
		return Totals{}, err
	}
	logger.Info("batch started",
		logging.String("input_dir", dir),
		logging.Int("documents", len(docs)),
	)

	totals := Totals{Documents: len(docs)}
	results := make(chan Result, len(docs))
	var skipped []Result
	var group errgroup.Group

	stopProgress := c.startProgress(ctx, logger)
	defer stopProgress()

	for _, path := range docs {
		file, err := os.Open(path)
		if err != nil {
			openErr := &OpenError{Path: path, Err: err}
			logging.WarnWithContext(logger, "document skipped", "document_open_failed",
				logging.String(logging.FieldDocument, path),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check the file exists and is readable"),
				logging.String(logging.FieldImpact, "document not counted"),
			)
			c.reporter.OpenFailed(path, err)
			if !c.cfg.Batch.SkipUnreadable {
				_ = group.Wait()
				logging.ErrorWithContext(logger, "batch aborted", "batch_aborted",
					logging.String(logging.FieldDocument, path),
					logging.Error(err),
					logging.String(logging.FieldErrorHint, "set batch.skip_unreadable = true to continue past unreadable documents"),
				)
				return totals, openErr
			}
			skipped = append(skipped, Result{Document: path, Err: openErr, Skipped: true})
			continue
		}

		c.tracker.RegisterJob()
		w := worker{
			jobID:    uuid.NewString(),
			path:     path,
			parser:   c.cfg.Parser,
			tracker:  c.tracker,
			reporter: c.reporter,
			logger:   c.logger,
		}
		group.Go(func() error {
			defer c.tracker.CompleteJob()
			defer file.Close()
			results <- w.run(ctx, file)
			return nil
		})
	}

	// Workers always return nil; per-document errors travel in Result.
	_ = group.Wait()
	snapshot := c.tracker.Wait()
	close(results)

	collected := make([]Result, 0, len(docs))
	for res := range results {
		if res.Err != nil {
			totals.Failed++
		} else {
			totals.Succeeded++
		}
		collected = append(collected, res)
	}
	totals.Skipped = len(skipped)
	totals.TotalItems = snapshot.TotalItems
	collected = append(collected, skipped...)
	sort.Slice(collected, func(i, j int) bool { return collected[i].Document < collected[j].Document })

	c.reporter.Done(snapshot.TotalItems)
	if c.cfg.Report.Table && len(collected) > 0 {
		c.reporter.Println(report.SummaryTable(Rows(collected)))
	}

	logger.Info("batch finished",
		logging.Int("documents", totals.Documents),
		logging.Int("succeeded", totals.Succeeded),
		logging.Int("failed", totals.Failed),
		logging.Int("skipped", totals.Skipped),
		logging.Int("total_items", totals.TotalItems),
	)
	return totals, nil
}

// startProgress logs a tracker snapshot every progress interval until the
// returned stop function is called or ctx ends.
func (c *Coordinator) startProgress(ctx context.Context, logger *slog.Logger) func() {
	interval := c.cfg.ProgressEvery()
	if interval <= 0 {
		return func() {}
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case <-ticker.C:
				snap := c.tracker.Snapshot()
				logger.Info("waiting for workers",
					logging.Int("outstanding", snap.Outstanding),
					logging.Int("total_items", snap.TotalItems),
				)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			wg.Wait()
		})
	}
}
