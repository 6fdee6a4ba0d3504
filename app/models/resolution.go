package models

import (
	"slices"

	"github.com/go-playground/validator/v10"
)

// Resolution is one of the supported video resolution tags.
type Resolution string

const (
	P144  Resolution = "P144"
	P240  Resolution = "P240"
	P360  Resolution = "P360"
	P480  Resolution = "P480"
	P720  Resolution = "P720"
	P1080 Resolution = "P1080"
	P1440 Resolution = "P1440"
	P2160 Resolution = "P2160"
)

// Resolutions lists every supported tag in ascending order.
var Resolutions = []Resolution{P144, P240, P360, P480, P720, P1080, P1440, P2160}

// IsValid reports whether r is a supported tag.
func (r Resolution) IsValid() bool {
	return slices.Contains(Resolutions, r)
}

func init() {
	validate.RegisterValidation("resolution", func(fl validator.FieldLevel) bool {
		return Resolution(fl.Field().String()).IsValid()
	})
}
