package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/learnlife319/app/internal/media"
	"go.uber.org/zap"
)

// AudioURLPrefix is the public path under which uploaded audio is served
const AudioURLPrefix = "/api/media/audio/"

// FileStorage is the interface that wraps methods for media file access
type FileStorage interface {
	Create(id, mediaType string) (io.WriteCloser, error)
	Open(id, mediaType string) (*os.File, error)
	Delete(id, mediaType string) error
}

type mediaService struct {
	storage FileStorage
	logger  *zap.Logger
}

// NewMediaService creates a new media service
func NewMediaService(storage FileStorage, logger *zap.Logger) *mediaService {
	return &mediaService{
		storage: storage,
		logger:  logger,
	}
}

// UploadAudio stores an uploaded audio file and returns the URL it is served from
func (s *mediaService) UploadAudio(ctx context.Context, userID int, file io.Reader, filename string) (string, error) {
	ext, ok := media.AudioExtension(filename)
	if !ok {
		return "", ErrUnsupportedMediaType
	}

	name := media.GenerateFileName(ext)
	w, err := s.storage.Create(name, media.MediaTypeAudio)
	if err != nil {
		s.logger.Error("failed to create media file", zap.String("name", name), zap.Error(err))
		return "", fmt.Errorf("failed to create media file: %w", err)
	}

	sw := media.NewSizeWriter()
	_, copyErr := io.Copy(io.MultiWriter(w, sw), file)
	closeErr := w.Close()
	if copyErr != nil || closeErr != nil {
		s.storage.Delete(name, media.MediaTypeAudio)
		err := errors.Join(copyErr, closeErr)
		s.logger.Error("failed to store media file", zap.String("name", name), zap.Error(err))
		return "", fmt.Errorf("failed to store media file: %w", err)
	}

	s.logger.Info("audio uploaded",
		zap.Int("userID", userID),
		zap.String("name", name),
		zap.Int64("size", sw.Size()),
	)
	return AudioURLPrefix + name, nil
}

// OpenAudio opens a stored audio file by its generated name
func (s *mediaService) OpenAudio(ctx context.Context, name string) (*os.File, error) {
	if !media.IsGeneratedAudioName(name) {
		return nil, notFound("Audio file")
	}

	f, err := s.storage.Open(name, media.MediaTypeAudio)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, notFound("Audio file")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open media file: %w", err)
	}
	return f, nil
}
