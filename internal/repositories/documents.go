package repositories

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/learnlife319/app/internal/storage"
	"go.uber.org/zap"
)

// Collection keys and the documents they are stored in
const (
	usersCollection        = "users"
	foldersCollection      = "folders"
	passagesCollection     = "passages"
	vocabularyCollection   = "vocabulary"
	writingCollection      = "writing"
	speakingCollection     = "speaking"
	feedbackCollection     = "feedback"
	moodsCollection        = "moods"
	lessonsCollection      = "lessons"
	achievementsCollection = "achievements"
	commentsCollection     = "comments"
)

func document(collection string) string {
	return collection + ".json"
}

var (
	// ErrNotFound is returned when the requested record does not exist
	ErrNotFound = storage.ErrNotFound
	// ErrConflict is returned when a unique field is already taken
	ErrConflict = storage.ErrConflict
)

// wrapError logs unexpected storage failures and wraps err with msg
func wrapError(logger *zap.Logger, err error, msg string, fields ...zap.Field) error {
	if !errors.Is(err, storage.ErrNotFound) && !errors.Is(err, storage.ErrConflict) {
		logger.Error(msg, append(fields, zap.Error(err))...)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// sortNewestFirst orders records by the given time descending, newest ids first on ties
func sortNewestFirst[T any](records []T, at func(*T) time.Time, id func(*T) int) {
	sort.SliceStable(records, func(i, j int) bool {
		ti, tj := at(&records[i]), at(&records[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return id(&records[i]) > id(&records[j])
	})
}
