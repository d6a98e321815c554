package converter

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is the advisory lock held in the output directory during a run.
const LockFileName = ".transcriptbatch.lock"

// ErrOutputLocked is returned when another conversion holds the output lock.
var ErrOutputLocked = errors.New("output directory is locked by another conversion")

func lockOutputDir(dir string) (func(), error) {
	lock := flock.New(filepath.Join(dir, LockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire output lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", dir, ErrOutputLocked)
	}
	return func() { _ = lock.Unlock() }, nil
}
