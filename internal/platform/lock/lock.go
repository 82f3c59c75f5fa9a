// Package lock serialises acquisition runs that share a models directory.
package lock

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Locker provides mutual exclusion between processes.
type Locker interface {
	// Unlock releases the lock. Safe to call multiple times.
	Unlock() error
}

// PathFor returns the lock file used for dir. The file lives in the temp
// directory so it never shows up inside the models directory itself.
func PathFor(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	sum := sha1.Sum([]byte(abs))
	return filepath.Join(os.TempDir(), "modelfetch-"+hex.EncodeToString(sum[:6])+".lock")
}

// Acquire takes an exclusive lock on path, polling with backoff until the lock
// is held or ctx is done.
func Acquire(ctx context.Context, path string) (Locker, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	l := &fileLock{file: file}
	sleep := 10 * time.Millisecond
	for {
		if err := l.tryLock(); err == nil {
			l.locked = true
			return l, nil
		}

		select {
		case <-ctx.Done():
			file.Close()
			return nil, fmt.Errorf("waiting for lock %s: %w", path, ctx.Err())
		case <-time.After(sleep):
		}
		if sleep < 500*time.Millisecond {
			sleep *= 2
		}
	}
}

type fileLock struct {
	file   *os.File
	locked bool
}

// Unlock releases the advisory lock and closes the file handle.
func (l *fileLock) Unlock() error {
	if l.file == nil {
		return nil
	}
	var err error
	if l.locked {
		err = l.unlock()
		l.locked = false
	}
	l.file.Close()
	l.file = nil
	return err
}
