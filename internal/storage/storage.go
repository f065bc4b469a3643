// Package storage implements a document store that keeps every entity collection
// as a single JSON document of the form {"<collection>": [...], "lastId": N}.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when a record with the requested id does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned by CreateUnless when a conflicting record already exists.
	ErrConflict = errors.New("record already exists")
)

const lastIDKey = "lastId"

// Backend reads and writes whole collection documents by name.
type Backend interface {
	// Read returns the raw document or nil if the document does not exist yet.
	Read(ctx context.Context, name string) ([]byte, error)
	// Write replaces the whole document.
	Write(ctx context.Context, name string, data []byte) error
}

// Locker is implemented by backends whose documents can be shared between processes.
// Lock blocks until the caller holds the named document exclusively.
type Locker interface {
	Lock(ctx context.Context, name string) (unlock func(), err error)
}

// Record is implemented by every stored entity. SetID is only called on creation.
type Record[T any] interface {
	*T
	GetID() int
	SetID(id int)
}

// Store hands out collections over a single backend and owns their locks.
type Store struct {
	backend Backend
	logger  *zap.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a new Store on top of the given backend
func New(backend Backend, logger *zap.Logger) *Store {
	return &Store{
		backend: backend,
		logger:  logger,
		locks:   make(map[string]*sync.Mutex),
	}
}

// lock returns the mutex guarding the named document
func (s *Store) lock(document string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[document]
	if !ok {
		l = &sync.Mutex{}
		s.locks[document] = l
	}
	return l
}

// acquire takes the in-process lock of the document and, when the backend
// supports it, the lock shared with other processes.
func (s *Store) acquire(ctx context.Context, document string) (func(), error) {
	l := s.lock(document)
	l.Lock()

	locker, ok := s.backend.(Locker)
	if !ok {
		return l.Unlock, nil
	}

	unlock, err := locker.Lock(ctx, document)
	if err != nil {
		l.Unlock()
		s.logger.Error("failed to lock document", zap.String("document", document), zap.Error(err))
		return nil, fmt.Errorf("failed to lock %s: %w", document, err)
	}

	return func() {
		unlock()
		l.Unlock()
	}, nil
}

// Collection is a typed view over one document of the store.
//
// Every method performs a full read-modify-write of the document while holding
// the collection lock, so ids are never handed out twice. Writers in other
// processes are excluded as well when the backend implements Locker.
type Collection[T any, P Record[T]] struct {
	store    *Store
	name     string
	document string
}

// NewCollection binds the collection key "name" stored in "document" to the type T
func NewCollection[T any, P Record[T]](store *Store, name, document string) *Collection[T, P] {
	return &Collection[T, P]{
		store:    store,
		name:     name,
		document: document,
	}
}

// Name returns the collection key used inside the document
func (c *Collection[T, P]) Name() string {
	return c.name
}

// Create assigns the next id to the record, appends it and persists the document.
func (c *Collection[T, P]) Create(ctx context.Context, record T) (*T, error) {
	return c.CreateUnless(ctx, record, func(*T) bool { return false })
}

// CreateUnless creates the record only if no stored record is accepted by conflicts.
// The check and the insert happen under the same lock.
func (c *Collection[T, P]) CreateUnless(ctx context.Context, record T, conflicts func(*T) bool) (*T, error) {
	release, err := c.store.acquire(ctx, c.document)
	if err != nil {
		return nil, err
	}
	defer release()

	records, lastID, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if conflicts(&records[i]) {
			return nil, ErrConflict
		}
	}

	lastID++
	P(&record).SetID(lastID)
	records = append(records, record)

	if err := c.save(ctx, records, lastID); err != nil {
		return nil, err
	}

	return &record, nil
}

// Get returns the record with the given id or ErrNotFound.
func (c *Collection[T, P]) Get(ctx context.Context, id int) (*T, error) {
	return c.Find(ctx, func(record *T) bool {
		return P(record).GetID() == id
	})
}

// Find returns the first record accepted by match or ErrNotFound.
func (c *Collection[T, P]) Find(ctx context.Context, match func(*T) bool) (*T, error) {
	records, err := c.List(ctx, match)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return &records[0], nil
}

// List returns all records accepted by match in storage order.
// A nil match returns every record. The result is never nil.
// Backends replace documents atomically, so reads skip the shared lock.
func (c *Collection[T, P]) List(ctx context.Context, match func(*T) bool) ([]T, error) {
	l := c.store.lock(c.document)
	l.Lock()
	defer l.Unlock()

	records, _, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]T, 0, len(records))
	for i := range records {
		if match == nil || match(&records[i]) {
			result = append(result, records[i])
		}
	}
	return result, nil
}

// Update applies mutate to the record with the given id and persists the document.
//
// If there is no such record ErrNotFound is returned and nothing is written.
// If mutate returns an error the document is left untouched and the error is returned as is.
func (c *Collection[T, P]) Update(ctx context.Context, id int, mutate func(*T) error) (*T, error) {
	release, err := c.store.acquire(ctx, c.document)
	if err != nil {
		return nil, err
	}
	defer release()

	records, lastID, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	index := c.indexOf(records, id)
	if index == -1 {
		return nil, ErrNotFound
	}

	if err := mutate(&records[index]); err != nil {
		return nil, err
	}
	// ids are immutable
	P(&records[index]).SetID(id)

	if err := c.save(ctx, records, lastID); err != nil {
		return nil, err
	}

	updated := records[index]
	return &updated, nil
}

// Delete removes the record with the given id. The id counter is not rolled back.
func (c *Collection[T, P]) Delete(ctx context.Context, id int) error {
	release, err := c.store.acquire(ctx, c.document)
	if err != nil {
		return err
	}
	defer release()

	records, lastID, err := c.load(ctx)
	if err != nil {
		return err
	}

	index := c.indexOf(records, id)
	if index == -1 {
		return ErrNotFound
	}

	records = append(records[:index], records[index+1:]...)
	return c.save(ctx, records, lastID)
}

func (c *Collection[T, P]) indexOf(records []T, id int) int {
	for i := range records {
		if P(&records[i]).GetID() == id {
			return i
		}
	}
	return -1
}

// load reads and decodes the document. A missing document is an empty collection.
func (c *Collection[T, P]) load(ctx context.Context) ([]T, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	raw, err := c.store.backend.Read(ctx, c.document)
	if err != nil {
		c.store.logger.Error("failed to read document", zap.String("document", c.document), zap.Error(err))
		return nil, 0, fmt.Errorf("failed to read %s: %w", c.document, err)
	}
	if len(raw) == 0 {
		return nil, 0, nil
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		c.store.logger.Error("failed to decode document", zap.String("document", c.document), zap.Error(err))
		return nil, 0, fmt.Errorf("failed to decode %s: %w", c.document, err)
	}

	var records []T
	if body, ok := doc[c.name]; ok {
		if err := json.Unmarshal(body, &records); err != nil {
			return nil, 0, fmt.Errorf("failed to decode %s records: %w", c.document, err)
		}
	}

	var lastID int
	if body, ok := doc[lastIDKey]; ok {
		if err := json.Unmarshal(body, &lastID); err != nil {
			return nil, 0, fmt.Errorf("failed to decode %s lastId: %w", c.document, err)
		}
	}

	// lastId must never fall behind ids already present (hand-edited files)
	for i := range records {
		if id := P(&records[i]).GetID(); id > lastID {
			lastID = id
		}
	}

	return records, lastID, nil
}

// save encodes the records and the counter and replaces the document.
func (c *Collection[T, P]) save(ctx context.Context, records []T, lastID int) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(map[string]any{
		c.name:    records,
		lastIDKey: lastID,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.document, err)
	}

	if err := c.store.backend.Write(ctx, c.document, data); err != nil {
		c.store.logger.Error("failed to write document", zap.String("document", c.document), zap.Error(err))
		return fmt.Errorf("failed to write %s: %w", c.document, err)
	}

	return nil
}
