package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// ErrLockTimeout is returned when the lock stays held past the wait budget.
var ErrLockTimeout = errors.New("timeout acquiring lock")

// Lock is a cross-process mutex backed by a directory. Whoever creates the
// directory owns the lock.
type Lock struct {
	dir     string
	timeout time.Duration
	retry   time.Duration
	// stale is the age after which a held lock is assumed abandoned.
	stale time.Duration
}

// NewLock returns a lock rooted at dir with the default timings.
func NewLock(dir string) *Lock {
	return &Lock{
		dir:     dir,
		timeout: 10 * time.Second,
		retry:   50 * time.Millisecond,
		stale:   2 * time.Minute,
	}
}

// Acquire blocks until the lock is held, the timeout elapses or ctx is done.
func (l *Lock) Acquire(ctx context.Context) error {
	waitCtx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	ticker := time.NewTicker(l.retry)
	defer ticker.Stop()

	for {
		held, err := l.tryAcquire()
		if err != nil || held {
			return err
		}
		select {
		case <-waitCtx.Done():
			if err := ctx.Err(); err != nil {
				return err
			}
			return fmt.Errorf("%w %s", ErrLockTimeout, l.dir)
		case <-ticker.C:
		}
	}
}

func (l *Lock) tryAcquire() (bool, error) {
	err := os.Mkdir(l.dir, FileModeDir)
	switch {
	case err == nil:
		// Owner file is informational; a failure here does not lose the lock.
		_ = os.WriteFile(l.ownerPath(), []byte(strconv.Itoa(os.Getpid())), FileModeFile)
		return true, nil
	case os.IsExist(err):
		l.breakIfStale()
		return false, nil
	default:
		return false, fmt.Errorf("create lock directory: %w", err)
	}
}

// breakIfStale removes a lock left behind by a crashed process. The stale
// directory is first renamed to a name unique to this waiter, so two waiters
// cannot both break it and end up sharing a freshly created lock.
func (l *Lock) breakIfStale() {
	if l.stale <= 0 {
		return
	}
	seen, err := os.Stat(l.dir)
	if err != nil || time.Since(seen.ModTime()) < l.stale {
		return
	}

	grave := fmt.Sprintf("%s.stale-%d-%d", l.dir, os.Getpid(), time.Now().UnixNano())
	if err := os.Rename(l.dir, grave); err != nil {
		// Another waiter got there first.
		return
	}
	moved, err := os.Stat(grave)
	if err == nil && !os.SameFile(seen, moved) {
		// The stale lock was replaced between Stat and Rename; hand the
		// live one back to its owner.
		if os.Rename(grave, l.dir) == nil {
			return
		}
	}
	_ = os.RemoveAll(grave)
}

func (l *Lock) ownerPath() string { return filepath.Join(l.dir, "owner") }

// Release drops the lock.
func (l *Lock) Release() error {
	return os.RemoveAll(l.dir)
}

// WithLock runs fn while holding the lock at dir.
func WithLock(ctx context.Context, dir string, fn func() error) (err error) {
	lock := NewLock(dir)
	if err := lock.Acquire(ctx); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer func() {
		if relErr := lock.Release(); relErr != nil && err == nil {
			err = fmt.Errorf("release lock: %w", relErr)
		}
	}()
	return fn()
}
