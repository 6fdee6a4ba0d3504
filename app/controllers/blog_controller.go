package controllers

import (
	"net/http"

	"bloghub/app/middleware"
	"bloghub/app/services"
)

// BlogController handles HTTP requests for blogs
type BlogController struct {
	blogService *services.BlogService
}

// NewBlogController creates a new BlogController
func NewBlogController(blogService *services.BlogService) *BlogController {
	return &BlogController{blogService: blogService}
}

// Index lists all blogs
func (bc *BlogController) Index(w http.ResponseWriter, r *http.Request) {
	blogs, err := bc.blogService.ListBlogs(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, blogs)
}

// Show returns a single blog
func (bc *BlogController) Show(w http.ResponseWriter, r *http.Request) {
	blog, err := bc.blogService.GetBlog(r.Context(), pathID(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, blog)
}

// Create handles creating a new blog
func (bc *BlogController) Create(w http.ResponseWriter, r *http.Request) {
	blog, err := bc.blogService.CreateBlog(r.Context(), middleware.IsAuthorized(r.Context()), readForm(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	sendJSON(w, http.StatusCreated, blog)
}

// Update replaces a blog's fields
func (bc *BlogController) Update(w http.ResponseWriter, r *http.Request) {
	err := bc.blogService.UpdateBlog(r.Context(), middleware.IsAuthorized(r.Context()), pathID(r), readForm(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles deleting a blog
func (bc *BlogController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := bc.blogService.DeleteBlog(r.Context(), middleware.IsAuthorized(r.Context()), pathID(r)); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
