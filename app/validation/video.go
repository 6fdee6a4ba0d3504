package validation

import "bloghub/app/models"

// VideoRules returns the chains for a video write.
func VideoRules() []*Chain {
	return []*Chain{
		textField("title", "title", 40),
		textField("author", "author", 20),
		For("canBeDownloaded").Optional().
			Must(IsStrictBool, "can be downloaded is invalid"),
		For("minAgeRestriction").Nullable().
			Must(IsIntBetween(1, 18), "min age restriction is invalid"),
		For("publicationDate").Optional().
			Must(IsISO8601, "publication date is invalid"),
		For("availableResolutions").Nullable().
			Must(IsResolutionSet, "available resolutions is invalid"),
	}
}

// ValidateVideo checks form and returns the video input. Optional fields are
// Set only when the body carries them.
func ValidateVideo(form Form) (models.VideoInput, error) {
	if err := Validate(form, VideoRules()...); err != nil {
		return models.VideoInput{}, err
	}

	in := models.VideoInput{
		Title:  form.Field("title").Trimmed(),
		Author: form.Field("author").Trimmed(),
	}

	if f := form.Field("canBeDownloaded"); f.Present() {
		in.CanBeDownloaded = models.Some(f.Bool())
	}

	if f := form.Field("minAgeRestriction"); f.Present() {
		var age *int
		if !f.IsNull() {
			v := int(f.Int())
			age = &v
		}
		in.MinAgeRestriction = models.Some(age)
	}

	if f := form.Field("publicationDate"); f.Present() {
		date, err := models.NormalizeISO(f.Str)
		if err != nil {
			return models.VideoInput{}, err
		}
		in.PublicationDate = models.Some(date)
	}

	if f := form.Field("availableResolutions"); f.Present() {
		var resolutions []models.Resolution
		if !f.IsNull() {
			for _, item := range f.Array() {
				resolutions = append(resolutions, models.Resolution(item.Str))
			}
		}
		in.AvailableResolutions = models.Some(resolutions)
	}

	return in, nil
}
