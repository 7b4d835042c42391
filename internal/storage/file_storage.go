package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cristianoliveira/pairup/internal/colors"
)

const (
	stateFileName = "state.json"
	lockDirName   = "lock"
)

// ErrCorruptState indicates the state file exists but is not a JSON object of strings.
var ErrCorruptState = errors.New("storage: corrupt state file")

// FileStore keeps all keys in a single JSON object file. Writers serialize
// through a directory lock and replace the file atomically.
type FileStore struct {
	path    string
	lockDir string

	mu     sync.RWMutex
	closed bool
}

var _ Store = (*FileStore)(nil)

// NewFileStore opens a file store rooted at dir, creating dir if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("file storage: directory cannot be empty")
	}
	if err := os.MkdirAll(dir, FileModeDir); err != nil {
		return nil, fmt.Errorf("file storage: create state directory: %w", err)
	}
	return &FileStore{
		path:    filepath.Join(dir, stateFileName),
		lockDir: filepath.Join(dir, lockDirName),
	}, nil
}

// Path returns the state file path.
func (fs *FileStore) Path() string {
	return fs.path
}

func (fs *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := fs.check(ctx); err != nil {
		return "", false, err
	}
	data, err := fs.read()
	if err != nil {
		return "", false, err
	}
	v, ok := data[key]
	return v, ok, nil
}

func (fs *FileStore) Set(ctx context.Context, key, value string) error {
	return fs.update(ctx, func(data map[string]string) {
		data[key] = value
	})
}

func (fs *FileStore) Remove(ctx context.Context, key string) error {
	return fs.update(ctx, func(data map[string]string) {
		delete(data, key)
	})
}

func (fs *FileStore) Clear(ctx context.Context) error {
	return fs.update(ctx, func(data map[string]string) {
		for k := range data {
			delete(data, k)
		}
	})
}

// Close marks the store closed. The file is left in place.
func (fs *FileStore) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.closed = true
	return nil
}

func (fs *FileStore) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	if fs.closed {
		return ErrClosed
	}
	return nil
}

// read loads the state file. A missing file is an empty store.
func (fs *FileStore) read() (map[string]string, error) {
	raw, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("file storage: read %s: %w", fs.path, err)
	}
	data := make(map[string]string)
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	return data, nil
}

// update runs mutate on the current contents under the lock and writes the result.
// A corrupt file is replaced rather than blocking every later write.
func (fs *FileStore) update(ctx context.Context, mutate func(map[string]string)) error {
	if err := fs.check(ctx); err != nil {
		return err
	}
	return WithLock(ctx, fs.lockDir, func() error {
		data, err := fs.read()
		if errors.Is(err, ErrCorruptState) {
			colors.Warning(fmt.Sprintf("state file %s is corrupt, starting fresh: %v", fs.path, err))
			data, err = make(map[string]string), nil
		}
		if err != nil {
			return err
		}
		mutate(data)
		return fs.write(data)
	})
}

func (fs *FileStore) write(data map[string]string) error {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("file storage: encode state: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(fs.path), stateFileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("file storage: create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(encoded); err != nil {
		tmp.Close()
		return fmt.Errorf("file storage: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("file storage: close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, FileModeFile); err != nil {
		return fmt.Errorf("file storage: chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, fs.path); err != nil {
		return fmt.Errorf("file storage: replace state file: %w", err)
	}
	return nil
}
