package usecase

import (
	"testing"

	"movies-api/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inceptionBody = `{"title":"Inception","year":2010,"director":"Nolan","duration":148,"poster":"https://x.com/p.jpg","genre":["Sci-Fi"]}`

func fieldsOf(errs []utils.FieldError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Field
	}
	return out
}

func TestValidateMovieAppliesDefaultRate(t *testing.T) {
	result := ValidateMovie([]byte(inceptionBody))
	require.True(t, result.Success, "errors: %v", result.Errors)

	req := result.Data
	assert.Equal(t, "Inception", *req.Title)
	assert.Equal(t, 2010.0, *req.Year)
	assert.Equal(t, "Nolan", *req.Director)
	assert.Equal(t, 148.0, *req.Duration)
	assert.Equal(t, "https://x.com/p.jpg", *req.Poster)
	assert.Equal(t, []string{"Sci-Fi"}, req.Genre)
	require.NotNil(t, req.Rate)
	assert.Equal(t, 5.0, *req.Rate)
}

func TestValidateMovieKeepsExplicitRate(t *testing.T) {
	body := `{"title":"T","year":1900,"director":"D","duration":1,"rate":0,"poster":"https://x.com","genre":["Crime","Drama"]}`
	result := ValidateMovie([]byte(body))
	require.True(t, result.Success, "errors: %v", result.Errors)
	assert.Equal(t, 0.0, *result.Data.Rate)
}

func TestValidateMovieStripsUnknownFields(t *testing.T) {
	body := `{"id":"client-chosen","extra":true,"title":"Inception","year":2010,"director":"Nolan","duration":148,"poster":"https://x.com/p.jpg","genre":["Sci-Fi"]}`
	result := ValidateMovie([]byte(body))
	assert.True(t, result.Success)
}

func TestValidateMovieRejects(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		fields []string
		code   string
	}{
		{"year below minimum", `{"title":"Bad","year":1800,"director":"X","duration":100,"poster":"https://x.com/p.jpg","genre":["Drama"]}`, []string{"year"}, "min"},
		{"year above maximum", `{"title":"Bad","year":2025,"director":"X","duration":100,"poster":"https://x.com/p.jpg","genre":["Drama"]}`, []string{"year"}, "max"},
		{"fractional year", `{"title":"Bad","year":2010.5,"director":"X","duration":100,"poster":"https://x.com/p.jpg","genre":["Drama"]}`, []string{"year"}, "integer"},
		{"fractional duration", `{"title":"Bad","year":2010,"director":"X","duration":99.9,"poster":"https://x.com/p.jpg","genre":["Drama"]}`, []string{"duration"}, "integer"},
		{"zero duration", `{"title":"Bad","year":2010,"director":"X","duration":0,"poster":"https://x.com/p.jpg","genre":["Drama"]}`, []string{"duration"}, "gt"},
		{"negative duration", `{"title":"Bad","year":2010,"director":"X","duration":-3,"poster":"https://x.com/p.jpg","genre":["Drama"]}`, []string{"duration"}, "gt"},
		{"rate too high", `{"title":"Bad","year":2010,"director":"X","duration":100,"rate":10.5,"poster":"https://x.com/p.jpg","genre":["Drama"]}`, []string{"rate"}, "max"},
		{"rate negative", `{"title":"Bad","year":2010,"director":"X","duration":100,"rate":-1,"poster":"https://x.com/p.jpg","genre":["Drama"]}`, []string{"rate"}, "min"},
		{"poster not url", `{"title":"Bad","year":2010,"director":"X","duration":100,"poster":"not a url","genre":["Drama"]}`, []string{"poster"}, "url"},
		{"empty genre", `{"title":"Bad","year":2010,"director":"X","duration":100,"poster":"https://x.com/p.jpg","genre":[]}`, []string{"genre"}, "min"},
		{"unknown genre", `{"title":"Bad","year":2010,"director":"X","duration":100,"poster":"https://x.com/p.jpg","genre":["Drama","Romance"]}`, []string{"genre[1]"}, "oneof"},
		{"genre lowercase", `{"title":"Bad","year":2010,"director":"X","duration":100,"poster":"https://x.com/p.jpg","genre":["drama"]}`, []string{"genre[0]"}, "oneof"},
		{"title number", `{"title":42,"year":2010,"director":"X","duration":100,"poster":"https://x.com/p.jpg","genre":["Drama"]}`, []string{"title"}, "invalid_type"},
		{"empty title", `{"title":"","year":2010,"director":"X","duration":100,"poster":"https://x.com/p.jpg","genre":["Drama"]}`, []string{"title"}, "min"},
		{"null director", `{"title":"T","year":2010,"director":null,"duration":100,"poster":"https://x.com/p.jpg","genre":["Drama"]}`, []string{"director"}, "invalid_type"},
		{"genre string", `{"title":"T","year":2010,"director":"X","duration":100,"poster":"https://x.com/p.jpg","genre":"Drama"}`, []string{"genre"}, "invalid_type"},
		{"missing poster", `{"title":"T","year":2010,"director":"X","duration":100,"genre":["Drama"]}`, []string{"poster"}, "required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := ValidateMovie([]byte(tc.body))
			require.False(t, result.Success)
			assert.Nil(t, result.Data)
			assert.Equal(t, tc.fields, fieldsOf(result.Errors))
			assert.Equal(t, tc.code, result.Errors[0].Code)
			assert.NotEmpty(t, result.Errors[0].Message)
		})
	}
}

func TestValidateMovieReportsEveryMissingField(t *testing.T) {
	result := ValidateMovie([]byte(`{}`))
	require.False(t, result.Success)
	assert.Equal(t, []string{"title", "year", "director", "duration", "poster", "genre"}, fieldsOf(result.Errors))
	for _, e := range result.Errors {
		assert.Equal(t, "required", e.Code)
	}
}

func TestValidateMovieTypeErrorMessages(t *testing.T) {
	result := ValidateMovie([]byte(`{"title":"T","year":"2010","director":"X","duration":1.5,"poster":"https://x.com","genre":["Drama",3]}`))
	require.False(t, result.Success)

	assert.Equal(t, []utils.FieldError{
		{Field: "year", Code: "invalid_type", Message: "Expected number, received string"},
		{Field: "duration", Code: "integer", Message: "Expected integer, received float"},
		{Field: "genre", Code: "invalid_type", Message: "Expected string, received number"},
	}, result.Errors)
}

func TestValidateMovieRejectsNonObjectBodies(t *testing.T) {
	cases := map[string]string{
		"array":  `[]`,
		"string": `"movie"`,
		"null":   `null`,
		"broken": `{"title":`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			result := ValidateMovie([]byte(body))
			require.False(t, result.Success)
			require.Len(t, result.Errors, 1)
			assert.Empty(t, result.Errors[0].Field)
		})
	}
}

func TestValidatePartialMovie(t *testing.T) {
	result := ValidatePartialMovie([]byte(`{"year":1999}`))
	require.True(t, result.Success, "errors: %v", result.Errors)

	req := result.Data
	assert.Equal(t, 1999.0, *req.Year)
	assert.Nil(t, req.Title)
	assert.Nil(t, req.Director)
	assert.Nil(t, req.Duration)
	assert.Nil(t, req.Rate, "partial validation never defaults rate")
	assert.Nil(t, req.Poster)
	assert.Nil(t, req.Genre)
}

func TestValidatePartialMovieEmptyObject(t *testing.T) {
	result := ValidatePartialMovie([]byte(`{}`))
	assert.True(t, result.Success)
}

func TestValidatePartialMovieEnforcesPresentFields(t *testing.T) {
	cases := map[string]struct {
		body  string
		field string
	}{
		"year out of range": {`{"year":3000}`, "year"},
		"empty genre":       {`{"genre":[]}`, "genre"},
		"bad genre":         {`{"genre":["Western"]}`, "genre[0]"},
		"bad poster":        {`{"poster":"::"}`, "poster"},
		"null title":        {`{"title":null}`, "title"},
		"empty title":       {`{"title":""}`, "title"},
		"rate string":       {`{"rate":"9"}`, "rate"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			result := ValidatePartialMovie([]byte(tc.body))
			require.False(t, result.Success)
			assert.Equal(t, []string{tc.field}, fieldsOf(result.Errors))
		})
	}
}

func TestValidateMovieAcceptsIntegerValuedFloats(t *testing.T) {
	body := `{"title":"Inception","year":2010.0,"director":"Nolan","duration":148.0,"poster":"https://x.com/p.jpg","genre":["Sci-Fi"]}`

	result := ValidateMovie([]byte(body))
	require.True(t, result.Success, "errors: %v", result.Errors)
	assert.Equal(t, 2010.0, *result.Data.Year)
	assert.Equal(t, 148.0, *result.Data.Duration)

	partial := ValidatePartialMovie([]byte(`{"year":1.999e3}`))
	require.True(t, partial.Success, "errors: %v", partial.Errors)
	assert.Equal(t, 1999.0, *partial.Data.Year)
}

func TestValidateMovieRejectsUnsafeInteger(t *testing.T) {
	result := ValidatePartialMovie([]byte(`{"duration":1e20}`))
	require.False(t, result.Success)
	assert.Equal(t, []string{"duration"}, fieldsOf(result.Errors))
	assert.Equal(t, "integer", result.Errors[0].Code)
}

func TestValidateEmptyBodyIsEmptyObject(t *testing.T) {
	for _, body := range []string{"", "  \n"} {
		partial := ValidatePartialMovie([]byte(body))
		assert.True(t, partial.Success, "body %q: %v", body, partial.Errors)

		full := ValidateMovie([]byte(body))
		require.False(t, full.Success)
		assert.Equal(t, []string{"title", "year", "director", "duration", "poster", "genre"}, fieldsOf(full.Errors))
	}
}
