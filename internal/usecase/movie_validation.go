package usecase

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"movies-api/internal/data/entity"
	"movies-api/internal/dto/request"
	"movies-api/pkg/utils"
)

// movieFields lists the accepted body fields in report order. Anything else
// in a body is ignored.
var movieFields = []string{"title", "year", "director", "duration", "rate", "poster", "genre"}

// ValidationResult is either a typed body (Success) or the field errors that
// rejected it.
type ValidationResult[T any] struct {
	Success bool
	Data    *T
	Errors  []utils.FieldError
}

func invalid[T any](errs []utils.FieldError) ValidationResult[T] {
	return ValidationResult[T]{Errors: errs}
}

// ValidateMovie checks a complete movie body. Every field except rate is
// required; a missing rate becomes entity.DefaultRate.
func ValidateMovie(body []byte) ValidationResult[request.MovieRequest] {
	var req request.MovieRequest
	if errs := decodeMovieBody(body, &req); len(errs) > 0 {
		return invalid[request.MovieRequest](errs)
	}

	if req.Rate == nil {
		rate := entity.DefaultRate
		req.Rate = &rate
	}

	return ValidationResult[request.MovieRequest]{Success: true, Data: &req}
}

// ValidatePartialMovie checks a movie body where every field is optional.
// Absent fields stay nil.
func ValidatePartialMovie(body []byte) ValidationResult[request.MoviePatchRequest] {
	var req request.MoviePatchRequest
	if errs := decodeMovieBody(body, &req); len(errs) > 0 {
		return invalid[request.MoviePatchRequest](errs)
	}

	return ValidationResult[request.MoviePatchRequest]{Success: true, Data: &req}
}

// decodeMovieBody fills dst field by field so that every wrong type is
// reported, then runs dst's validate tags.
func decodeMovieBody(body []byte, dst any) []utils.FieldError {
	// An empty body is an empty object, as with a JSON body parser that
	// defaults to {}.
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return []utils.FieldError{bodyError(err)}
	}
	if raw == nil {
		return []utils.FieldError{{Code: "invalid_type", Message: "Expected object, received null"}}
	}

	typeErrs := make(map[string]utils.FieldError)
	for _, field := range movieFields {
		value, ok := raw[field]
		if !ok {
			continue
		}

		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			typeErrs[field] = utils.FieldError{
				Field:   field,
				Code:    "invalid_type",
				Message: fmt.Sprintf("Expected %s, received null", expectedByField(dst, field)),
			}
			continue
		}

		single, _ := json.Marshal(map[string]json.RawMessage{field: value})
		if err := json.Unmarshal(single, dst); err != nil {
			typeErrs[field] = fieldDecodeError(field, err)
		}
	}

	validationErrs := utils.ValidateStruct(dst)

	var errs []utils.FieldError
	for _, field := range movieFields {
		if e, ok := typeErrs[field]; ok {
			errs = append(errs, e)
			continue
		}
		for _, e := range validationErrs {
			if baseField(e.Field) == field {
				errs = append(errs, e)
			}
		}
	}

	return errs
}

func bodyError(err error) utils.FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return utils.FieldError{
			Code:    "invalid_type",
			Message: fmt.Sprintf("Expected object, received %s", receivedType(typeErr.Value)),
		}
	}
	return utils.FieldError{Code: "invalid_json", Message: "Malformed JSON body"}
}

func fieldDecodeError(field string, err error) utils.FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return utils.FieldError{
			Field:   field,
			Code:    "invalid_type",
			Message: fmt.Sprintf("Expected %s, received %s", typeName(typeErr.Type), receivedType(typeErr.Value)),
		}
	}
	return utils.FieldError{Field: field, Code: "invalid_type", Message: err.Error()}
}

// expectedByField names the JSON type expected for field on dst.
func expectedByField(dst any, field string) string {
	t := reflect.TypeOf(dst).Elem()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if strings.SplitN(f.Tag.Get("json"), ",", 2)[0] == field {
			return typeName(f.Type)
		}
	}
	return "value"
}

func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

// receivedType turns encoding/json's value description ("string",
// "number 1e400", ...) into a type name.
func receivedType(value string) string {
	kind, _, _ := strings.Cut(value, " ")
	if kind == "bool" {
		return "boolean"
	}
	return kind
}

// baseField strips a dive index: "genre[0]" -> "genre".
func baseField(field string) string {
	if i := strings.IndexByte(field, '['); i >= 0 {
		return field[:i]
	}
	return field
}
