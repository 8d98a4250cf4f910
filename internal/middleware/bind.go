package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/pkg/e"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/pkg/validator"
)

const maxBodyBytes = 1 << 20

// DecodeJSON reads exactly one JSON object into dst and validates it.
// Unknown fields, trailing data and failed validation are ErrInvalidInput.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	const op = "middleware.DecodeJSON"

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%s: invalid JSON: %v: %w", op, err, e.ErrInvalidInput)
	}

	// reject anything after the first object
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: trailing data after JSON object: %w", op, e.ErrInvalidInput)
	}

	if err := validator.ValidateStruct(dst); err != nil {
		return fmt.Errorf("%s: %v: %w", op, err, e.ErrInvalidInput)
	}
	return nil
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
