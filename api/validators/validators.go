package validators

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/autoshift-labs/autoshift-backend/pkg/errors"
)

var validate = validator.New()

// DecodeJSONBody parses and validates a request body into dst. Struct tags
// drive validation; failures come back as a validation error carrying the
// offending fields as details.
func DecodeJSONBody(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return errors.Wrap(errors.CodeValidation, err, "invalid request body")
	}

	if err := validate.Struct(dst); err != nil {
		var fieldErrors validator.ValidationErrors
		if ok := asValidationErrors(err, &fieldErrors); ok {
			details := make(map[string]string, len(fieldErrors))
			for _, fe := range fieldErrors {
				details[strings.ToLower(fe.Field())] = fe.Tag()
			}
			return errors.New(errors.CodeValidation, "validation failed").WithDetails(details)
		}
		return errors.Wrap(errors.CodeValidation, err, "validation failed")
	}
	return nil
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = fieldErrors
	return true
}

// UUIDParam parses a UUID path or query value.
func UUIDParam(value, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return uuid.Nil, errors.New(errors.CodeValidation, fmt.Sprintf("invalid %s", name))
	}
	return id, nil
}

// DateQuery parses a required YYYY-MM-DD query value.
func DateQuery(r *http.Request, name string) (time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return time.Time{}, errors.New(errors.CodeValidation, fmt.Sprintf("%s is required", name))
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, errors.New(errors.CodeValidation, fmt.Sprintf("invalid %s, expected YYYY-MM-DD", name))
	}
	return t, nil
}

// OptionalDateQuery parses an optional YYYY-MM-DD query value.
func OptionalDateQuery(r *http.Request, name string) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, errors.New(errors.CodeValidation, fmt.Sprintf("invalid %s, expected YYYY-MM-DD", name))
	}
	return &t, nil
}

// BoolQuery parses an optional boolean query value, defaulting to false.
func BoolQuery(r *http.Request, name string) bool {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return false
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return parsed
}

// IntQuery parses an optional integer query value, defaulting to zero.
func IntQuery(r *http.Request, name string) int {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return parsed
}
