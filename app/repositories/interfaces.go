package repositories

import (
	"context"

	"bloghub/app/models"
)

// BlogRepository defines the interface for blog data access
type BlogRepository interface {
	List(ctx context.Context) ([]*models.Blog, error)
	GetByID(ctx context.Context, id string) (*models.Blog, error)
	Create(ctx context.Context, in models.BlogInput) (*models.Blog, error)
	Update(ctx context.Context, id string, in models.BlogInput) (*models.Blog, error)
	Delete(ctx context.Context, id string) (*models.Blog, error)
	Clear(ctx context.Context) error
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	List(ctx context.Context) ([]*models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Create(ctx context.Context, in models.PostInput) (*models.Post, error)
	Update(ctx context.Context, id string, in models.PostInput) (*models.Post, error)
	Delete(ctx context.Context, id string) (*models.Post, error)
	Clear(ctx context.Context) error
}

// VideoRepository defines the interface for video data access
type VideoRepository interface {
	List(ctx context.Context) ([]*models.Video, error)
	GetByID(ctx context.Context, id int64) (*models.Video, error)
	Create(ctx context.Context, in models.VideoInput) (*models.Video, error)
	Update(ctx context.Context, id int64, in models.VideoInput) (*models.Video, error)
	Delete(ctx context.Context, id int64) (*models.Video, error)
	Clear(ctx context.Context) error
}
