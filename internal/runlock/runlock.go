// Package runlock guards a storage directory against concurrent runs.
//
// The pipeline's read-modify-write files are only safe when one process at a
// time touches them. The lock is advisory (flock) and opt-out via
// run.lock_enabled for operators who already serialize runs externally.
package runlock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is created inside the guarded data directory.
const LockFileName = "slangvault.lock"

// Lock holds an acquired file lock.
type Lock struct {
	path string
	fl   *flock.Flock
}

// Acquire takes a non-blocking exclusive lock on the data directory. A held
// lock means another slangvault process is using the same storage; callers
// should refuse to run rather than wait.
func Acquire(dataDir string) (*Lock, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure data directory: %w", err)
	}
	path := filepath.Join(dataDir, LockFileName)
	fl := flock.New(path)

	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("another slangvault instance is already running against %s", dataDir)
	}
	return &Lock{path: path, fl: fl}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// Release drops the lock.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
