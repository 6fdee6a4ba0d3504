package validation

import (
	"strings"
	"testing"

	"bloghub/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateVideoErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []Violation
	}{
		{
			name: "empty title and author",
			body: `{"title": "", "author": ""}`,
			want: []Violation{
				{Message: "title is required", Field: "title"},
				{Message: "author is required", Field: "author"},
			},
		},
		{
			name: "too long",
			body: `{"title": "` + strings.Repeat("t", 41) + `", "author": "` + strings.Repeat("a", 21) + `"}`,
			want: []Violation{
				{Message: "title is too long", Field: "title"},
				{Message: "author is too long", Field: "author"},
			},
		},
		{
			name: "bad optional fields",
			body: `{"title": "t", "author": "a", "canBeDownloaded": "yes", "minAgeRestriction": 19,
				"publicationDate": "tomorrow", "availableResolutions": ["P144", "P1"]}`,
			want: []Violation{
				{Message: "can be downloaded is invalid", Field: "canBeDownloaded"},
				{Message: "min age restriction is invalid", Field: "minAgeRestriction"},
				{Message: "publication date is invalid", Field: "publicationDate"},
				{Message: "available resolutions is invalid", Field: "availableResolutions"},
			},
		},
		{
			name: "non integer age",
			body: `{"title": "t", "author": "a", "minAgeRestriction": 2.5}`,
			want: []Violation{
				{Message: "min age restriction is invalid", Field: "minAgeRestriction"},
			},
		},
		{
			name: "string age",
			body: `{"title": "t", "author": "a", "minAgeRestriction": "12"}`,
			want: []Violation{
				{Message: "min age restriction is invalid", Field: "minAgeRestriction"},
			},
		},
		{
			name: "empty resolutions",
			body: `{"title": "t", "author": "a", "availableResolutions": []}`,
			want: []Violation{
				{Message: "available resolutions is invalid", Field: "availableResolutions"},
			},
		},
		{
			name: "null can be downloaded",
			body: `{"title": "t", "author": "a", "canBeDownloaded": null}`,
			want: []Violation{
				{Message: "can be downloaded is invalid", Field: "canBeDownloaded"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateVideo(NewForm([]byte(tt.body)))
			verr, ok := AsErrors(err)
			require.True(t, ok)
			assert.Equal(t, tt.want, verr.Messages)
		})
	}
}

func TestValidateVideoMinimal(t *testing.T) {
	in, err := ValidateVideo(NewForm([]byte(`{"title": "title", "author": "author"}`)))
	require.NoError(t, err)

	assert.Equal(t, models.VideoInput{Title: "title", Author: "author"}, in)
}

func TestValidateVideoOptionalFields(t *testing.T) {
	in, err := ValidateVideo(NewForm([]byte(`{
		"title": "title",
		"author": "author",
		"canBeDownloaded": false,
		"minAgeRestriction": null,
		"publicationDate": "2023-01-12T08:12:39.261Z",
		"availableResolutions": ["P720", "P1080"]
	}`)))
	require.NoError(t, err)

	assert.Equal(t, models.Some(false), in.CanBeDownloaded)
	assert.True(t, in.MinAgeRestriction.Set)
	assert.Nil(t, in.MinAgeRestriction.Value)
	assert.Equal(t, models.Some("2023-01-12T08:12:39.261Z"), in.PublicationDate)
	assert.Equal(t, models.Some([]models.Resolution{models.P720, models.P1080}), in.AvailableResolutions)
}

func TestValidateVideoAge(t *testing.T) {
	in, err := ValidateVideo(NewForm([]byte(`{"title": "title", "author": "author", "minAgeRestriction": 16}`)))
	require.NoError(t, err)

	require.True(t, in.MinAgeRestriction.Set)
	require.NotNil(t, in.MinAgeRestriction.Value)
	assert.Equal(t, 16, *in.MinAgeRestriction.Value)
}
