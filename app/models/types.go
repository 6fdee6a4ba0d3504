package models

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Blog is a publication that posts are attached to.
type Blog struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required,max=15"`
	Description string `json:"description" validate:"required,max=500"`
	WebsiteURL  string `json:"websiteUrl" validate:"required,max=100"`
}

// Post belongs to a blog. BlogName is copied from the blog when the post is
// created and is not refreshed afterwards.
type Post struct {
	ID               string `json:"id" validate:"required"`
	Title            string `json:"title" validate:"required,max=30"`
	ShortDescription string `json:"shortDescription" validate:"required,max=100"`
	Content          string `json:"content" validate:"required,max=1000"`
	BlogID           string `json:"blogId" validate:"required"`
	BlogName         string `json:"blogName"`
}

// Video is a standalone media entry.
type Video struct {
	ID                   int64        `json:"id" validate:"required"`
	Title                string       `json:"title" validate:"required,max=40"`
	Author               string       `json:"author" validate:"required,max=20"`
	CanBeDownloaded      bool         `json:"canBeDownloaded"`
	MinAgeRestriction    *int         `json:"minAgeRestriction" validate:"omitempty,min=1,max=18"`
	CreatedAt            string       `json:"createdAt" validate:"required"`
	PublicationDate      string       `json:"publicationDate" validate:"required"`
	AvailableResolutions []Resolution `json:"availableResolutions" validate:"omitempty,min=1,dive,resolution"`
}

// Optional distinguishes a value that was supplied from one that was left out.
type Optional[T any] struct {
	Set   bool
	Value T
}

// Some returns a set Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// BlogInput carries the validated, trimmed fields of a blog write.
type BlogInput struct {
	Name        string
	Description string
	WebsiteURL  string
}

// PostInput carries the validated, trimmed fields of a post write.
type PostInput struct {
	Title            string
	ShortDescription string
	Content          string
	BlogID           string
}

// VideoInput carries the validated fields of a video write. Title and Author
// are always replaced; the optional fields only when Set.
type VideoInput struct {
	Title                string
	Author               string
	CanBeDownloaded      Optional[bool]
	MinAgeRestriction    Optional[*int]
	PublicationDate      Optional[string]
	AvailableResolutions Optional[[]Resolution]
}
