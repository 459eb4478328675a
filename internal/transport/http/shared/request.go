package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ems/internal/apperror"
)

// DecodeJSON reads a single JSON object into dst. Unknown fields are
// ignored.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &maxErr):
			return apperror.Validation("body", "request body too large")
		case errors.Is(err, io.EOF):
			return apperror.Validation("body", "request body is required")
		case errors.As(err, &typeErr):
			return apperror.Validation(typeErr.Field, fmt.Sprintf("%s has an invalid type", typeErr.Field))
		default:
			return apperror.Validation("body", "invalid JSON payload").WithCause(err)
		}
	}
	return nil
}

// QueryDate parses an optional date query parameter.
func QueryDate(r *http.Request, name string) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return nil, apperror.Validation(name, name+" must be a valid date in YYYY-MM-DD format")
	}
	return &parsed, nil
}

// QueryInt parses an optional integer query parameter; 0 means absent.
func QueryInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.Validation(name, name+" must be an integer")
	}
	return value, nil
}

func QueryString(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}
