package models

// Validate checks the stored invariants of a blog.
func (b *Blog) Validate() error {
	return validate.Struct(b)
}

// Apply replaces the writable fields of the blog.
func (b *Blog) Apply(in BlogInput) {
	b.Name = in.Name
	b.Description = in.Description
	b.WebsiteURL = in.WebsiteURL
}
