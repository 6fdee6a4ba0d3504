package controllers

import (
	"net/http"

	"bloghub/app/middleware"
	"bloghub/app/services"
)

// VideoController handles HTTP requests for videos
type VideoController struct {
	videoService *services.VideoService
}

// NewVideoController creates a new VideoController
func NewVideoController(videoService *services.VideoService) *VideoController {
	return &VideoController{videoService: videoService}
}

// Index lists all videos
func (vc *VideoController) Index(w http.ResponseWriter, r *http.Request) {
	videos, err := vc.videoService.ListVideos(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, videos)
}

// Show returns a single video
func (vc *VideoController) Show(w http.ResponseWriter, r *http.Request) {
	video, err := vc.videoService.GetVideo(r.Context(), pathID(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, video)
}

// Create handles creating a new video
func (vc *VideoController) Create(w http.ResponseWriter, r *http.Request) {
	video, err := vc.videoService.CreateVideo(r.Context(), middleware.IsAuthorized(r.Context()), readForm(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	sendJSON(w, http.StatusCreated, video)
}

// Update applies the body to an existing video
func (vc *VideoController) Update(w http.ResponseWriter, r *http.Request) {
	err := vc.videoService.UpdateVideo(r.Context(), middleware.IsAuthorized(r.Context()), pathID(r), readForm(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles deleting a video
func (vc *VideoController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := vc.videoService.DeleteVideo(r.Context(), middleware.IsAuthorized(r.Context()), pathID(r)); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
