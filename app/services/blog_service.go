package services

import (
	"context"

	"bloghub/app/models"
	"bloghub/app/repositories"
	"bloghub/app/validation"
)

// BlogService handles business logic for blogs
type BlogService struct {
	blogRepo repositories.BlogRepository
}

// NewBlogService creates a new BlogService
func NewBlogService(blogRepo repositories.BlogRepository) *BlogService {
	return &BlogService{blogRepo: blogRepo}
}

// ListBlogs returns every blog in creation order
func (s *BlogService) ListBlogs(ctx context.Context) ([]*models.Blog, error) {
	return s.blogRepo.List(ctx)
}

// GetBlog retrieves a blog by ID
func (s *BlogService) GetBlog(ctx context.Context, id string) (*models.Blog, error) {
	return s.blogRepo.GetByID(ctx, id)
}

// CreateBlog validates form and stores a new blog
func (s *BlogService) CreateBlog(ctx context.Context, authorized bool, form validation.Form) (*models.Blog, error) {
	if !authorized {
		return nil, ErrUnauthorized
	}

	in, err := validation.ValidateBlog(form)
	if err != nil {
		return nil, err
	}

	return s.blogRepo.Create(ctx, in)
}

// UpdateBlog validates form and replaces the blog's fields. Validation runs
// before the blog is looked up.
func (s *BlogService) UpdateBlog(ctx context.Context, authorized bool, id string, form validation.Form) error {
	if !authorized {
		return ErrUnauthorized
	}

	in, err := validation.ValidateBlog(form)
	if err != nil {
		return err
	}

	_, err = s.blogRepo.Update(ctx, id, in)
	return err
}

// DeleteBlog removes a blog. Its posts are left in place.
func (s *BlogService) DeleteBlog(ctx context.Context, authorized bool, id string) error {
	if !authorized {
		return ErrUnauthorized
	}

	_, err := s.blogRepo.Delete(ctx, id)
	return err
}
