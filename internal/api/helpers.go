package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/vytor/edugame/internal/errors"
	"github.com/vytor/edugame/internal/logger"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response: %v", err)
	}
}

// formIdentity returns the form value verbatim. Usernames are registry keys and
// are never normalized.
func formIdentity(r *http.Request, key string) (string, error) {
	v := r.FormValue(key)
	if v == "" {
		return "", errors.NewValidationError(key, "is required")
	}
	return v, nil
}

// formString returns the trimmed form value, or a validation error when it is
// missing.
func formString(r *http.Request, key string) (string, error) {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return "", errors.NewValidationError(key, "is required")
	}
	return v, nil
}

func formUint(r *http.Request, key string) (uint64, error) {
	v, err := formString(r, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, errors.NewValidationError(key, "must be a non-negative integer")
	}
	return n, nil
}

func formInt(r *http.Request, key string, def int) (int, error) {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.NewValidationError(key, "must be an integer")
	}
	return n, nil
}
