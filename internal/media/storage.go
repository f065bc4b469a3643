// Package media stores uploaded audio files on the local filesystem
package media

import (
	"io"
	"os"
	"path/filepath"
)

// MediaTypeAudio is the subdirectory holding audio uploads
const MediaTypeAudio = "audio"

// localStorage keeps files under basePath/<mediaType>/<id>
type localStorage struct {
	basePath string
}

// NewLocalStorage creates a new localStorage instance
func NewLocalStorage(basePath string) *localStorage {
	return &localStorage{
		basePath: basePath,
	}
}

func (s *localStorage) path(id, mediaType string) string {
	return filepath.Join(s.basePath, mediaType, filepath.Base(id))
}

// Create creates a new file and returns a WriteCloser
func (s *localStorage) Create(id, mediaType string) (io.WriteCloser, error) {
	path := s.path(id, mediaType)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	return os.Create(path)
}

// Open opens a file for reading
func (s *localStorage) Open(id, mediaType string) (*os.File, error) {
	return os.Open(s.path(id, mediaType))
}

// Delete removes a file
func (s *localStorage) Delete(id, mediaType string) error {
	return os.Remove(s.path(id, mediaType))
}
