package models

import (
	"errors"
	"time"
)

// Validate checks the stored invariants of a video.
func (v *Video) Validate() error {
	if err := validate.Struct(v); err != nil {
		return err
	}

	if _, err := ParseISO(v.PublicationDate); err != nil {
		return errors.New("publication date is not an ISO timestamp")
	}

	return nil
}

// BeforeCreate stamps the creation time and defaults the publication date to
// one day after creation.
func (v *Video) BeforeCreate(now time.Time) {
	if v.CreatedAt == "" {
		v.CreatedAt = FormatISO(now)
	}
	if v.PublicationDate == "" {
		v.PublicationDate = FormatISO(now.AddDate(0, 0, 1))
	}
}

// Apply replaces title and author and overwrites each optional field only
// when the input carries it.
func (v *Video) Apply(in VideoInput) {
	v.Title = in.Title
	v.Author = in.Author

	if in.CanBeDownloaded.Set {
		v.CanBeDownloaded = in.CanBeDownloaded.Value
	}
	if in.MinAgeRestriction.Set {
		v.MinAgeRestriction = in.MinAgeRestriction.Value
	}
	if in.PublicationDate.Set {
		v.PublicationDate = in.PublicationDate.Value
	}
	if in.AvailableResolutions.Set {
		v.AvailableResolutions = in.AvailableResolutions.Value
	}
}
