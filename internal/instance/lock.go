// pattern: Imperative Shell
package instance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFileName = "cleandeps.lock"

// ErrAlreadyRunning is returned when another run holds the lock.
var ErrAlreadyRunning = errors.New("another cleandeps run is already in progress")

// Lock acquires an exclusive file lock in dataDir so two clean runs never
// delete concurrently. The caller must Release the returned handle.
func Lock(dataDir string) (*flock.Flock, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	fl := flock.New(LockPath(dataDir))
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, ErrAlreadyRunning
	}
	return fl, nil
}

// LockPath returns the lock file location inside dataDir.
func LockPath(dataDir string) string {
	return filepath.Join(dataDir, lockFileName)
}

// Release unlocks and removes the lock file.
func Release(fl *flock.Flock) {
	if fl == nil {
		return
	}
	_ = fl.Unlock()
	_ = os.Remove(fl.Path())
}

// Unlock removes a stale lock file left behind by a crashed run. It fails
// if a live run still holds the lock.
func Unlock(dataDir string) error {
	fl, err := Lock(dataDir)
	if err != nil {
		return err
	}
	Release(fl)
	return nil
}
