package services

import (
	"context"
	"errors"
	"fmt"

	"bloghub/app/models"
	"bloghub/app/repositories"
	"bloghub/app/validation"
)

// PostService handles business logic for posts
type PostService struct {
	postRepo repositories.PostRepository
	blogRepo repositories.BlogRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, blogRepo repositories.BlogRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		blogRepo: blogRepo,
	}
}

// ListPosts returns every post in creation order
func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.List(ctx)
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// CreatePost validates form, including the blog reference, and stores a new
// post carrying the blog's name.
func (s *PostService) CreatePost(ctx context.Context, authorized bool, form validation.Form) (*models.Post, error) {
	if !authorized {
		return nil, ErrUnauthorized
	}

	in, err := s.validate(ctx, form)
	if err != nil {
		return nil, err
	}

	post, err := s.postRepo.Create(ctx, in)
	if errors.Is(err, repositories.ErrBlogNotFound) {
		// the blog went away between validation and the write
		return nil, blogIDInvalid()
	}
	return post, err
}

// UpdatePost validates form and replaces the post's fields. The stored blog
// name is not refreshed.
func (s *PostService) UpdatePost(ctx context.Context, authorized bool, id string, form validation.Form) error {
	if !authorized {
		return ErrUnauthorized
	}

	in, err := s.validate(ctx, form)
	if err != nil {
		return err
	}

	_, err = s.postRepo.Update(ctx, id, in)
	return err
}

// DeletePost removes a post
func (s *PostService) DeletePost(ctx context.Context, authorized bool, id string) error {
	if !authorized {
		return ErrUnauthorized
	}

	_, err := s.postRepo.Delete(ctx, id)
	return err
}

// validate checks form against the stored blogs. A failed blog lookup is
// returned as is; only a missing blog counts as a blogId violation.
func (s *PostService) validate(ctx context.Context, form validation.Form) (models.PostInput, error) {
	var lookupErr error
	exists := func(id string) bool {
		_, err := s.blogRepo.GetByID(ctx, id)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			lookupErr = err
		}
		return err == nil
	}

	in, err := validation.ValidatePost(form, exists)
	if lookupErr != nil {
		return models.PostInput{}, fmt.Errorf("failed to look up blog: %w", lookupErr)
	}
	return in, err
}

func blogIDInvalid() *validation.Errors {
	return &validation.Errors{Messages: []validation.Violation{
		{Message: "blog id is invalid", Field: "blogId"},
	}}
}
