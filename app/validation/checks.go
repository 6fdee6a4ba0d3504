package validation

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"bloghub/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("iso8601", func(fl validator.FieldLevel) bool {
		_, err := models.ParseISO(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("resolution", func(fl validator.FieldLevel) bool {
		return models.Resolution(fl.Field().String()).IsValid()
	})
	return v
}

// IsString passes JSON strings.
func IsString(f Field) bool {
	return f.IsString()
}

// NotBlank passes strings that are not empty after trimming.
func NotBlank(f Field) bool {
	return f.IsString() && f.Trimmed() != ""
}

// NotEmpty passes any present, non-null value whose text form is non-empty.
// Strings are not trimmed.
func NotEmpty(f Field) bool {
	if !f.Present() || f.IsNull() {
		return false
	}
	if f.IsString() {
		return f.Str != ""
	}
	if f.IsArray() {
		return len(f.Array()) > 0
	}
	return f.Raw != ""
}

// MaxLength passes strings of at most n characters after trimming.
func MaxLength(n int) Check {
	tag := fmt.Sprintf("max=%d", n)
	return func(f Field) bool {
		return validate.Var(f.Trimmed(), tag) == nil
	}
}

// MaxRawLength passes strings of at most n characters, untrimmed.
func MaxRawLength(n int) Check {
	tag := fmt.Sprintf("max=%d", n)
	return func(f Field) bool {
		return validate.Var(f.Str, tag) == nil
	}
}

// IsWebsiteURL passes http(s) URLs with a fully qualified host. The scheme
// may be omitted. Arrays pass when every item does, so a later IsString rule
// reports them as invalid rather than as a template mismatch.
func IsWebsiteURL(f Field) bool {
	if f.IsArray() {
		items := f.Array()
		for _, item := range items {
			if item.Type != gjson.String || !isWebsiteURL(item.Str) {
				return false
			}
		}
		return len(items) > 0
	}
	return f.IsString() && isWebsiteURL(f.Str)
}

func isWebsiteURL(candidate string) bool {
	if !strings.Contains(candidate, "://") {
		candidate = "http://" + candidate
	}
	if validate.Var(candidate, "url") != nil {
		return false
	}

	u, err := url.Parse(candidate)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	return validate.Var(u.Hostname(), "fqdn") == nil
}

// IsStrictBool passes only JSON true and false.
func IsStrictBool(f Field) bool {
	return f.Type == gjson.True || f.Type == gjson.False
}

// IsIntBetween passes JSON numbers holding an integer in [min, max].
func IsIntBetween(min, max int) Check {
	tag := fmt.Sprintf("min=%d,max=%d", min, max)
	return func(f Field) bool {
		if f.Type != gjson.Number {
			return false
		}
		if f.Num != math.Trunc(f.Num) {
			return false
		}
		return validate.Var(int(f.Num), tag) == nil
	}
}

// IsISO8601 passes strings holding an ISO-8601 date or date-time.
func IsISO8601(f Field) bool {
	return f.IsString() && validate.Var(f.Str, "iso8601") == nil
}

// IsResolutionSet passes non-empty arrays of known resolution tags.
func IsResolutionSet(f Field) bool {
	if !f.IsArray() {
		return false
	}

	tags := make([]string, 0)
	for _, item := range f.Array() {
		if item.Type != gjson.String {
			return false
		}
		tags = append(tags, item.Str)
	}
	return validate.Var(tags, "min=1,dive,resolution") == nil
}
