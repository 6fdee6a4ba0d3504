package controllers

import (
	"net/http"

	"bloghub/app/middleware"
	"bloghub/app/services"
)

// PostController handles HTTP requests for posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// Index lists all posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, posts)
}

// Show returns a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	post, err := pc.postService.GetPost(r.Context(), pathID(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	post, err := pc.postService.CreatePost(r.Context(), middleware.IsAuthorized(r.Context()), readForm(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	sendJSON(w, http.StatusCreated, post)
}

// Update handles editing an existing post
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	err := pc.postService.UpdatePost(r.Context(), middleware.IsAuthorized(r.Context()), pathID(r), readForm(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := pc.postService.DeletePost(r.Context(), middleware.IsAuthorized(r.Context()), pathID(r)); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
