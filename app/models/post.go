package models

import "errors"

// Validate checks the stored invariants of a post.
func (p *Post) Validate() error {
	return validate.Struct(p)
}

// Apply replaces the writable fields of the post. BlogName is left as it
// was, even when the post moves to another blog.
func (p *Post) Apply(in PostInput) {
	p.Title = in.Title
	p.ShortDescription = in.ShortDescription
	p.Content = in.Content
	p.BlogID = in.BlogID
}

// SetBlog attaches the post to blog and copies its name.
func (p *Post) SetBlog(blog *Blog) error {
	if blog == nil {
		return errors.New("blog cannot be nil")
	}

	p.BlogID = blog.ID
	p.BlogName = blog.Name
	return nil
}
