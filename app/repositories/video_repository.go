package repositories

import (
	"context"
	"fmt"
	"time"

	"bloghub/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerVideoRepository implements VideoRepository using BadgerDB
type BadgerVideoRepository struct {
	db  *database
	now func() time.Time
}

// List returns every video in creation order
func (r *BadgerVideoRepository) List(ctx context.Context) ([]*models.Video, error) {
	return listEntities[models.Video](ctx, r.db, VideoKeyPrefix)
}

// GetByID retrieves a video by ID
func (r *BadgerVideoRepository) GetByID(ctx context.Context, id int64) (*models.Video, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	return findEntity[models.Video](ctx, r.db, entityKey(VideoKeyPrefix, id))
}

// Create stores a new video, stamping createdAt and the default publication
// date from the repository clock.
func (r *BadgerVideoRepository) Create(ctx context.Context, in models.VideoInput) (*models.Video, error) {
	var video *models.Video
	err := update(ctx, r.db, func(txn *badger.Txn) error {
		now := r.now()
		id, err := getNextID(txn, VideoSeqKey, now)
		if err != nil {
			return err
		}

		video = &models.Video{ID: id}
		video.Apply(in)
		video.BeforeCreate(now)
		if err := video.Validate(); err != nil {
			return fmt.Errorf("invalid video: %w", err)
		}

		return setEntity(txn, entityKey(VideoKeyPrefix, id), video)
	})
	if err != nil {
		return nil, err
	}
	return video, nil
}

// Update applies in to an existing video
func (r *BadgerVideoRepository) Update(ctx context.Context, id int64, in models.VideoInput) (*models.Video, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	return mutateEntity(ctx, r.db, entityKey(VideoKeyPrefix, id), func(video *models.Video) error {
		video.Apply(in)
		if err := video.Validate(); err != nil {
			return fmt.Errorf("invalid video: %w", err)
		}
		return nil
	})
}

// Delete removes a video and returns it
func (r *BadgerVideoRepository) Delete(ctx context.Context, id int64) (*models.Video, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	return removeEntity[models.Video](ctx, r.db, entityKey(VideoKeyPrefix, id))
}

// Clear removes every video
func (r *BadgerVideoRepository) Clear(ctx context.Context) error {
	return dropPrefix(ctx, r.db, VideoKeyPrefix)
}

var (
	_ BlogRepository  = (*BadgerBlogRepository)(nil)
	_ PostRepository  = (*BadgerPostRepository)(nil)
	_ VideoRepository = (*BadgerVideoRepository)(nil)
)
