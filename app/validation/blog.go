package validation

import "bloghub/app/models"

// textField builds the chain shared by the plain text fields: a string,
// non-blank once trimmed, and at most max characters long.
func textField(field, label string, max int) *Chain {
	return For(field).
		Must(IsString, label+" is invalid").
		Must(NotBlank, label+" is required").
		Must(MaxLength(max), label+" is too long")
}

// BlogRules returns the chains for a blog write, in response order.
func BlogRules() []*Chain {
	return []*Chain{
		textField("name", "name", 15),
		textField("description", "description", 500),
		For("websiteUrl").
			Must(NotEmpty, "website url is required").
			Must(IsWebsiteURL, "website url does not match the template").
			Must(IsString, "website url is invalid").
			Must(MaxRawLength(100), "website url is too long"),
	}
}

// ValidateBlog checks form and returns the trimmed blog input.
func ValidateBlog(form Form) (models.BlogInput, error) {
	if err := Validate(form, BlogRules()...); err != nil {
		return models.BlogInput{}, err
	}

	return models.BlogInput{
		Name:        form.Field("name").Trimmed(),
		Description: form.Field("description").Trimmed(),
		WebsiteURL:  form.Field("websiteUrl").Str,
	}, nil
}
