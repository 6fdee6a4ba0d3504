package repositories

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	// Key prefixes for different entity types
	BlogKeyPrefix  = "blog:"
	PostKeyPrefix  = "post:"
	VideoKeyPrefix = "video:"

	// Sequence keys remembering the last issued id
	BlogSeqKey  = "seq:blog"
	PostSeqKey  = "seq:post"
	VideoSeqKey = "seq:video"

	maxConflictRetries = 3
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrBlogNotFound = errors.New("blog not found")
)

// getNextID returns an id taken from the current millisecond, bumped past the
// last id issued for seqKey so ids stay unique and increasing.
func getNextID(txn *badger.Txn, seqKey string, now time.Time) (int64, error) {
	id := now.UnixMilli()

	item, err := txn.Get([]byte(seqKey))
	if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		return 0, fmt.Errorf("failed to get sequence: %w", err)
	}
	if err == nil {
		err = item.Value(func(val []byte) error {
			if len(val) != 8 {
				return fmt.Errorf("malformed sequence %q", seqKey)
			}
			if last := int64(binary.BigEndian.Uint64(val)); id <= last {
				id = last + 1
			}
			return nil
		})
		if err != nil {
			return 0, err
		}
	}

	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(id))
	if err := txn.Set([]byte(seqKey), buf); err != nil {
		return 0, fmt.Errorf("failed to update sequence: %w", err)
	}

	return id, nil
}

// entityKey zero-pads the id so key order follows id order.
func entityKey(prefix string, id int64) []byte {
	return []byte(fmt.Sprintf("%s%020d", prefix, id))
}

// parseID accepts only the canonical decimal form of a positive id.
func parseID(id string) (int64, bool) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 || strconv.FormatInt(n, 10) != id {
		return 0, false
	}
	return n, true
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %v", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %v", err)
	}
	return nil
}

func getEntity(txn *badger.Txn, key []byte, entity interface{}) error {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	return item.Value(func(val []byte) error {
		return unmarshalEntity(val, entity)
	})
}

func setEntity(txn *badger.Txn, key []byte, entity interface{}) error {
	data, err := marshalEntity(entity)
	if err != nil {
		return err
	}
	return txn.Set(key, data)
}

// database is the badger handle shared by the repositories of one Store.
// Writers take writeMu, so the id sequences never see conflicting commits.
type database struct {
	*badger.DB
	writeMu sync.Mutex
}

func newDatabase(db *badger.DB) *database {
	return &database{DB: db}
}

func view(ctx context.Context, db *database, fn func(txn *badger.Txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return db.View(fn)
}

// update runs fn in a read-write transaction while holding the write lock.
// Conflicts with writers outside the lock are retried; fn must not keep
// state between attempts.
func update(ctx context.Context, db *database, fn func(txn *badger.Txn) error) error {
	db.writeMu.Lock()
	defer db.writeMu.Unlock()

	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		if err = ctx.Err(); err != nil {
			return err
		}
		err = db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return err
}

// dropPrefix removes every key under prefix while holding the write lock.
func dropPrefix(ctx context.Context, db *database, prefix string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	db.writeMu.Lock()
	defer db.writeMu.Unlock()
	return db.DropPrefix([]byte(prefix))
}

// listEntities returns every entity under prefix in key order. The result is
// never nil.
func listEntities[T any](ctx context.Context, db *database, prefix string) ([]*T, error) {
	entities := make([]*T, 0)
	err := view(ctx, db, func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			var entity T
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &entity)
			})
			if err != nil {
				return err
			}
			entities = append(entities, &entity)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entities, nil
}

func findEntity[T any](ctx context.Context, db *database, key []byte) (*T, error) {
	var entity T
	err := view(ctx, db, func(txn *badger.Txn) error {
		return getEntity(txn, key, &entity)
	})
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func removeEntity[T any](ctx context.Context, db *database, key []byte) (*T, error) {
	var removed *T
	err := update(ctx, db, func(txn *badger.Txn) error {
		var entity T
		if err := getEntity(txn, key, &entity); err != nil {
			return err
		}
		removed = &entity
		return txn.Delete(key)
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

// mutateEntity loads the entity under key, applies fn and stores the result.
func mutateEntity[T any](ctx context.Context, db *database, key []byte, fn func(*T) error) (*T, error) {
	var updated *T
	err := update(ctx, db, func(txn *badger.Txn) error {
		var entity T
		if err := getEntity(txn, key, &entity); err != nil {
			return err
		}
		if err := fn(&entity); err != nil {
			return err
		}
		updated = &entity
		return setEntity(txn, key, &entity)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
