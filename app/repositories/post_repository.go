package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"bloghub/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db  *database
	now func() time.Time
}

// List returns every post in creation order
func (r *BadgerPostRepository) List(ctx context.Context) ([]*models.Post, error) {
	return listEntities[models.Post](ctx, r.db, PostKeyPrefix)
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	n, ok := parseID(id)
	if !ok {
		return nil, ErrNotFound
	}
	return findEntity[models.Post](ctx, r.db, entityKey(PostKeyPrefix, n))
}

// Create stores a new post. The blog is looked up in the same transaction
// and its name copied onto the post.
func (r *BadgerPostRepository) Create(ctx context.Context, in models.PostInput) (*models.Post, error) {
	blogID, ok := parseID(in.BlogID)
	if !ok {
		return nil, ErrBlogNotFound
	}

	var post *models.Post
	err := update(ctx, r.db, func(txn *badger.Txn) error {
		var blog models.Blog
		if err := getEntity(txn, entityKey(BlogKeyPrefix, blogID), &blog); err != nil {
			if errors.Is(err, ErrNotFound) {
				return ErrBlogNotFound
			}
			return err
		}

		id, err := getNextID(txn, PostSeqKey, r.now())
		if err != nil {
			return err
		}

		post = &models.Post{ID: strconv.FormatInt(id, 10)}
		post.Apply(in)
		if err := post.SetBlog(&blog); err != nil {
			return err
		}
		if err := post.Validate(); err != nil {
			return fmt.Errorf("invalid post: %w", err)
		}

		return setEntity(txn, entityKey(PostKeyPrefix, id), post)
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// Update replaces the writable fields of an existing post. The stored blog
// name is left untouched.
func (r *BadgerPostRepository) Update(ctx context.Context, id string, in models.PostInput) (*models.Post, error) {
	n, ok := parseID(id)
	if !ok {
		return nil, ErrNotFound
	}
	return mutateEntity(ctx, r.db, entityKey(PostKeyPrefix, n), func(post *models.Post) error {
		post.Apply(in)
		if err := post.Validate(); err != nil {
			return fmt.Errorf("invalid post: %w", err)
		}
		return nil
	})
}

// Delete removes a post and returns it
func (r *BadgerPostRepository) Delete(ctx context.Context, id string) (*models.Post, error) {
	n, ok := parseID(id)
	if !ok {
		return nil, ErrNotFound
	}
	return removeEntity[models.Post](ctx, r.db, entityKey(PostKeyPrefix, n))
}

// Clear removes every post
func (r *BadgerPostRepository) Clear(ctx context.Context) error {
	return dropPrefix(ctx, r.db, PostKeyPrefix)
}
