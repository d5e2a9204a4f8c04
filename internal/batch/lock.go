package batch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"feedtally/internal/logging"
)

type runLock struct {
	path string
	lock *flock.Flock
}

// acquireRunLock takes the exclusive run lock at path. An empty path disables
// locking and yields a nil lock.
func acquireRunLock(path string) (*runLock, error) {
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure lock directory: %w", err)
	}
	l := flock.New(path)
	ok, err := l.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (lock %s)", ErrLocked, path)
	}
	return &runLock{path: path, lock: l}, nil
}

func (l *runLock) release(logger *slog.Logger) {
	if l == nil {
		return
	}
	if err := l.lock.Unlock(); err != nil {
		logging.WarnWithContext(logger, "failed to release run lock", "run_lock_release_failed",
			logging.String("lock", l.path),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "remove the lock file if no run is active"),
		)
	}
}
