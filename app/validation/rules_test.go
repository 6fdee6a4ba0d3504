package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainStopsAtFirstFailure(t *testing.T) {
	calls := 0
	counting := func(f Field) bool {
		calls++
		return true
	}

	chain := For("title").
		Must(IsString, "title is invalid").
		Must(counting, "never reported")

	v, ok := chain.Run(NewForm([]byte(`{"title": 5}`)))
	assert.False(t, ok)
	assert.Equal(t, Violation{Message: "title is invalid", Field: "title"}, v)
	assert.Equal(t, 0, calls)
}

func TestValidateRunsEveryChain(t *testing.T) {
	form := NewForm([]byte(`{"a": 1, "b": "ok", "c": 2}`))

	err := Validate(form,
		For("a").Must(IsString, "a is invalid"),
		For("b").Must(IsString, "b is invalid"),
		For("c").Must(IsString, "c is invalid"),
	)

	verr, ok := AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "c"}, verr.Fields())
}

func TestValidatePasses(t *testing.T) {
	err := Validate(NewForm([]byte(`{"a": "x"}`)), For("a").Must(IsString, "a is invalid"))
	assert.NoError(t, err)
}

func TestOptionalAndNullable(t *testing.T) {
	optional := For("flag").Optional().Must(IsStrictBool, "flag is invalid")
	nullable := For("age").Nullable().Must(IsIntBetween(1, 18), "age is invalid")

	tests := []struct {
		name  string
		chain *Chain
		body  string
		ok    bool
	}{
		{name: "optional absent", chain: optional, body: `{}`, ok: true},
		{name: "optional null", chain: optional, body: `{"flag": null}`, ok: false},
		{name: "optional set", chain: optional, body: `{"flag": true}`, ok: true},
		{name: "nullable absent", chain: nullable, body: `{}`, ok: true},
		{name: "nullable null", chain: nullable, body: `{"age": null}`, ok: true},
		{name: "nullable out of range", chain: nullable, body: `{"age": 0}`, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := tt.chain.Run(NewForm([]byte(tt.body)))
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestNewFormRejectsNonObjects(t *testing.T) {
	for _, body := range []string{``, `not json`, `[1,2]`, `"text"`} {
		form := NewForm([]byte(body))
		assert.False(t, form.Field("name").Present(), body)
	}
}

func TestFieldPresence(t *testing.T) {
	form := NewForm([]byte(`{"a": null, "b": ""}`))

	assert.True(t, form.Field("a").Present())
	assert.True(t, form.Field("a").IsNull())
	assert.True(t, form.Field("b").Present())
	assert.False(t, form.Field("b").IsNull())
	assert.False(t, form.Field("c").Present())
}

func TestChecks(t *testing.T) {
	tests := []struct {
		name  string
		check Check
		body  string
		want  bool
	}{
		{name: "not blank spaces", check: NotBlank, body: `"   "`, want: false},
		{name: "not blank text", check: NotBlank, body: `" a "`, want: true},
		{name: "not empty number", check: NotEmpty, body: `1`, want: true},
		{name: "not empty empty string", check: NotEmpty, body: `""`, want: false},
		{name: "not empty empty array", check: NotEmpty, body: `[]`, want: false},
		{name: "max length trims", check: MaxLength(3), body: `"  abc  "`, want: true},
		{name: "max length counts runes", check: MaxLength(3), body: `"äöü"`, want: true},
		{name: "max length over", check: MaxLength(3), body: `"abcd"`, want: false},
		{name: "url with scheme", check: IsWebsiteURL, body: `"https://www.test.com/path"`, want: true},
		{name: "url without scheme", check: IsWebsiteURL, body: `"www.test.com"`, want: true},
		{name: "url bare word", check: IsWebsiteURL, body: `"test"`, want: false},
		{name: "url ftp", check: IsWebsiteURL, body: `"ftp://test.com"`, want: false},
		{name: "url number", check: IsWebsiteURL, body: `12`, want: false},
		{name: "url array of urls", check: IsWebsiteURL, body: `["https://a.com","b.org"]`, want: true},
		{name: "url array with a bad item", check: IsWebsiteURL, body: `["https://a.com","nope"]`, want: false},
		{name: "bool true", check: IsStrictBool, body: `true`, want: true},
		{name: "bool string", check: IsStrictBool, body: `"true"`, want: false},
		{name: "int in range", check: IsIntBetween(1, 18), body: `18`, want: true},
		{name: "int fraction", check: IsIntBetween(1, 18), body: `5.5`, want: false},
		{name: "int string", check: IsIntBetween(1, 18), body: `"5"`, want: false},
		{name: "int above", check: IsIntBetween(1, 18), body: `19`, want: false},
		{name: "iso datetime", check: IsISO8601, body: `"2023-01-12T08:12:39.261Z"`, want: true},
		{name: "iso year and month", check: IsISO8601, body: `"2023-01"`, want: true},
		{name: "iso garbage", check: IsISO8601, body: `"soon"`, want: false},
		{name: "iso array", check: IsISO8601, body: `["2023-01-12"]`, want: false},
		{name: "resolutions valid", check: IsResolutionSet, body: `["P144","P2160"]`, want: true},
		{name: "resolutions empty", check: IsResolutionSet, body: `[]`, want: false},
		{name: "resolutions unknown", check: IsResolutionSet, body: `["P144","P999"]`, want: false},
		{name: "resolutions not array", check: IsResolutionSet, body: `"P144"`, want: false},
		{name: "resolutions with a number", check: IsResolutionSet, body: `["P144",1]`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := NewForm([]byte(`{"v": ` + tt.body + `}`))
			assert.Equal(t, tt.want, tt.check(form.Field("v")))
		})
	}
}
