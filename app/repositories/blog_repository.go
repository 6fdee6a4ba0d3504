package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"bloghub/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerBlogRepository implements BlogRepository using BadgerDB
type BadgerBlogRepository struct {
	db  *database
	now func() time.Time
}

// List returns every blog in creation order
func (r *BadgerBlogRepository) List(ctx context.Context) ([]*models.Blog, error) {
	return listEntities[models.Blog](ctx, r.db, BlogKeyPrefix)
}

// GetByID retrieves a blog by ID
func (r *BadgerBlogRepository) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	n, ok := parseID(id)
	if !ok {
		return nil, ErrNotFound
	}
	return findEntity[models.Blog](ctx, r.db, entityKey(BlogKeyPrefix, n))
}

// Create stores a new blog under a fresh id
func (r *BadgerBlogRepository) Create(ctx context.Context, in models.BlogInput) (*models.Blog, error) {
	var blog *models.Blog
	err := update(ctx, r.db, func(txn *badger.Txn) error {
		id, err := getNextID(txn, BlogSeqKey, r.now())
		if err != nil {
			return err
		}

		blog = &models.Blog{ID: strconv.FormatInt(id, 10)}
		blog.Apply(in)
		if err := blog.Validate(); err != nil {
			return fmt.Errorf("invalid blog: %w", err)
		}

		return setEntity(txn, entityKey(BlogKeyPrefix, id), blog)
	})
	if err != nil {
		return nil, err
	}
	return blog, nil
}

// Update replaces the writable fields of an existing blog
func (r *BadgerBlogRepository) Update(ctx context.Context, id string, in models.BlogInput) (*models.Blog, error) {
	n, ok := parseID(id)
	if !ok {
		return nil, ErrNotFound
	}
	return mutateEntity(ctx, r.db, entityKey(BlogKeyPrefix, n), func(blog *models.Blog) error {
		blog.Apply(in)
		if err := blog.Validate(); err != nil {
			return fmt.Errorf("invalid blog: %w", err)
		}
		return nil
	})
}

// Delete removes a blog and returns it. Posts of the blog are kept.
func (r *BadgerBlogRepository) Delete(ctx context.Context, id string) (*models.Blog, error) {
	n, ok := parseID(id)
	if !ok {
		return nil, ErrNotFound
	}
	return removeEntity[models.Blog](ctx, r.db, entityKey(BlogKeyPrefix, n))
}

// Clear removes every blog
func (r *BadgerBlogRepository) Clear(ctx context.Context) error {
	return dropPrefix(ctx, r.db, BlogKeyPrefix)
}
