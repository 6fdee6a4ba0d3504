package services

import (
	"context"
	"strconv"

	"bloghub/app/models"
	"bloghub/app/repositories"
	"bloghub/app/validation"
)

// VideoService handles business logic for videos. Writes need a passing
// authorization verdict only when requireAuth is set.
type VideoService struct {
	videoRepo   repositories.VideoRepository
	requireAuth bool
}

// NewVideoService creates a new VideoService
func NewVideoService(videoRepo repositories.VideoRepository, requireAuth bool) *VideoService {
	return &VideoService{
		videoRepo:   videoRepo,
		requireAuth: requireAuth,
	}
}

// ListVideos returns every video in creation order
func (s *VideoService) ListVideos(ctx context.Context) ([]*models.Video, error) {
	return s.videoRepo.List(ctx)
}

// GetVideo retrieves a video by its decimal ID. Non-numeric ids are not found.
func (s *VideoService) GetVideo(ctx context.Context, id string) (*models.Video, error) {
	n, err := parseVideoID(id)
	if err != nil {
		return nil, err
	}
	return s.videoRepo.GetByID(ctx, n)
}

// CreateVideo validates form and stores a new video
func (s *VideoService) CreateVideo(ctx context.Context, authorized bool, form validation.Form) (*models.Video, error) {
	if err := s.authorize(authorized); err != nil {
		return nil, err
	}

	in, err := validation.ValidateVideo(form)
	if err != nil {
		return nil, err
	}

	return s.videoRepo.Create(ctx, in)
}

// UpdateVideo validates form and applies it to the video. Optional fields
// missing from the body keep their stored values.
func (s *VideoService) UpdateVideo(ctx context.Context, authorized bool, id string, form validation.Form) error {
	if err := s.authorize(authorized); err != nil {
		return err
	}

	in, err := validation.ValidateVideo(form)
	if err != nil {
		return err
	}

	n, err := parseVideoID(id)
	if err != nil {
		return err
	}

	_, err = s.videoRepo.Update(ctx, n, in)
	return err
}

// DeleteVideo removes a video
func (s *VideoService) DeleteVideo(ctx context.Context, authorized bool, id string) error {
	if err := s.authorize(authorized); err != nil {
		return err
	}

	n, err := parseVideoID(id)
	if err != nil {
		return err
	}

	_, err = s.videoRepo.Delete(ctx, n)
	return err
}

func (s *VideoService) authorize(authorized bool) error {
	if s.requireAuth && !authorized {
		return ErrUnauthorized
	}
	return nil
}

func parseVideoID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, repositories.ErrNotFound
	}
	return n, nil
}
