package media

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// AllowedAudioExtensions lists the accepted audio file extensions
var AllowedAudioExtensions = map[string]bool{
	".webm": true,
	".mp3":  true,
	".wav":  true,
	".ogg":  true,
	".m4a":  true,
}

// AudioExtension returns the lower-cased extension of filename if it is an accepted audio format
func AudioExtension(filename string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext, AllowedAudioExtensions[ext]
}

// GenerateFileName creates a UUID-based filename with the provided extension
func GenerateFileName(extension string) string {
	newUUID := uuid.New().String()
	if extension != "" && extension[0] != '.' {
		return newUUID + "." + extension
	}
	return newUUID + extension
}

// IsGeneratedAudioName reports whether name looks like a file produced by GenerateFileName
// with an accepted audio extension
func IsGeneratedAudioName(name string) bool {
	ext, ok := AudioExtension(name)
	if !ok {
		return false
	}
	_, err := uuid.Parse(strings.TrimSuffix(name, filepath.Ext(name)))
	return err == nil && strings.HasSuffix(name, ext)
}

// sizeWriter counts the bytes written through it
type sizeWriter struct {
	size int64
}

func (sw *sizeWriter) Write(p []byte) (int, error) {
	sw.size += int64(len(p))
	return len(p), nil
}

// Size returns the total number of bytes written
func (sw *sizeWriter) Size() int64 {
	return sw.size
}

// NewSizeWriter creates a new sizeWriter
func NewSizeWriter() *sizeWriter {
	return &sizeWriter{}
}
