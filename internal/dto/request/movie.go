package request

// MovieRequest is the body of POST /movies. Year and Duration decode as
// numbers so that integer-valued floats such as 2010.0 are accepted; the
// integer tag rejects fractions.
type MovieRequest struct {
	Title    *string  `json:"title" validate:"required,min=1"`
	Year     *float64 `json:"year" validate:"required,integer,min=1900,max=2024"`
	Director *string  `json:"director" validate:"required"`
	Duration *float64 `json:"duration" validate:"required,integer,gt=0"`
	Rate     *float64 `json:"rate" validate:"omitempty,min=0,max=10"`
	Poster   *string  `json:"poster" validate:"required,url"`
	Genre    []string `json:"genre" validate:"required,min=1,dive,oneof=Action Adventure Comedy Drama Fantasy Horror Thriller Sci-Fi Crime"`
}

// MoviePatchRequest is the body of PATCH /movies/{id}. Absent fields are nil.
type MoviePatchRequest struct {
	Title    *string  `json:"title" validate:"omitempty,min=1"`
	Year     *float64 `json:"year" validate:"omitempty,integer,min=1900,max=2024"`
	Director *string  `json:"director"`
	Duration *float64 `json:"duration" validate:"omitempty,integer,gt=0"`
	Rate     *float64 `json:"rate" validate:"omitempty,min=0,max=10"`
	Poster   *string  `json:"poster" validate:"omitempty,url"`
	Genre    []string `json:"genre" validate:"omitempty,min=1,dive,oneof=Action Adventure Comedy Drama Fantasy Horror Thriller Sci-Fi Crime"`
}
