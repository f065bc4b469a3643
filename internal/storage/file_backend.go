package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

const lockSuffix = ".lock"

// fileBackend keeps every document as a file inside a data directory
type fileBackend struct {
	dir string
}

// NewFileBackend creates a file backend and makes sure the data directory exists.
// The backend implements Locker so several processes can share the directory.
func NewFileBackend(dir string) (Backend, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	return &fileBackend{
		dir: dir,
	}, nil
}

// Read returns the file contents or nil if the file does not exist
func (b *fileBackend) Read(ctx context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(b.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Write stores data in a temporary file next to the target and renames it over the target,
// so readers never see a partially written document.
func (b *fileBackend) Write(ctx context.Context, name string, data []byte) error {
	tmp, err := os.CreateTemp(b.dir, name+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, filepath.Join(b.dir, name)); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// Lock holds an exclusive advisory lock on "<name>.lock" inside the data directory
func (b *fileBackend) Lock(ctx context.Context, name string) (func(), error) {
	f, err := os.OpenFile(filepath.Join(b.dir, name+lockSuffix), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}

	if err := lockFile(f); err != nil {
		f.Close()
		return nil, err
	}

	return func() {
		unlockFile(f)
		f.Close()
	}, nil
}
