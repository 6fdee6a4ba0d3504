package validation

import "bloghub/app/models"

// BlogExists reports whether a blog with the given id is stored.
type BlogExists func(id string) bool

// PostRules returns the chains for a post write. exists backs the blogId
// reference check.
func PostRules(exists BlogExists) []*Chain {
	return []*Chain{
		textField("title", "title", 30),
		textField("shortDescription", "short description", 100),
		textField("content", "content", 1000),
		For("blogId").
			Must(NotEmpty, "blog id is required").
			Must(IsString, "blog id is invalid").
			Must(func(f Field) bool { return exists(f.Str) }, "blog id is invalid"),
	}
}

// ValidatePost checks form and returns the trimmed post input.
func ValidatePost(form Form, exists BlogExists) (models.PostInput, error) {
	if err := Validate(form, PostRules(exists)...); err != nil {
		return models.PostInput{}, err
	}

	return models.PostInput{
		Title:            form.Field("title").Trimmed(),
		ShortDescription: form.Field("shortDescription").Trimmed(),
		Content:          form.Field("content").Trimmed(),
		BlogID:           form.Field("blogId").Str,
	}, nil
}
