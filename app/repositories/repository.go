package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Store owns the database holding every entity collection. An empty path
// keeps all data in memory.
type Store struct {
	db     *database
	dbPath string
	now    func() time.Time

	blogs  *BadgerBlogRepository
	posts  *BadgerPostRepository
	videos *BadgerVideoRepository
}

// StoreOption customizes a Store.
type StoreOption func(*Store)

// WithClock replaces the clock used for ids and timestamps.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// NewStore opens the database at path, or an in-memory one when path is empty.
func NewStore(path string, logger badger.Logger, opts ...StoreOption) (*Store, error) {
	dbOpts := badger.DefaultOptions(path).
		WithLogger(logger).
		WithNumVersionsToKeep(1)
	if path == "" {
		dbOpts = dbOpts.WithInMemory(true)
	} else {
		dbOpts = dbOpts.WithSyncWrites(true)
	}

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	return newStore(db, path, opts...), nil
}

func newStore(db *badger.DB, path string, opts ...StoreOption) *Store {
	s := &Store{db: newDatabase(db), dbPath: path, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	clock := func() time.Time { return s.now() }

	s.blogs = &BadgerBlogRepository{db: s.db, now: clock}
	s.posts = &BadgerPostRepository{db: s.db, now: clock}
	s.videos = &BadgerVideoRepository{db: s.db, now: clock}
	return s
}

// Blogs returns the blog repository.
func (s *Store) Blogs() *BadgerBlogRepository { return s.blogs }

// Posts returns the post repository.
func (s *Store) Posts() *BadgerPostRepository { return s.posts }

// Videos returns the video repository.
func (s *Store) Videos() *BadgerVideoRepository { return s.videos }

// DB exposes the underlying database for backup and restore.
func (s *Store) DB() *badger.DB { return s.db.DB }

// InMemory reports whether the store keeps no files.
func (s *Store) InMemory() bool { return s.dbPath == "" }

// Reset wipes every collection in one step.
func (s *Store) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.db.writeMu.Lock()
	defer s.db.writeMu.Unlock()
	if err := s.db.DropAll(); err != nil {
		return fmt.Errorf("failed to drop all keys: %w", err)
	}
	return nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}
