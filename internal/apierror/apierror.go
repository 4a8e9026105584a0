// Package apierror renders the JSON error bodies returned by the HTTP API.
package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"transparency/internal/query"
)

// ErrorCode is the stable machine-readable part of an error body.
type ErrorCode string

const (
	ErrCodeNotFound       ErrorCode = "NOT_FOUND"
	ErrCodeUnknownSortKey ErrorCode = "UNKNOWN_SORT_KEY"
	ErrCodeUnknownFilter  ErrorCode = "UNKNOWN_FILTER"
	ErrCodeUnknownBucket  ErrorCode = "UNKNOWN_RANGE_BUCKET"
	ErrCodeUnknownFacet   ErrorCode = "UNKNOWN_FACET_FIELD"
	ErrCodeInvalidParam   ErrorCode = "INVALID_PARAMETER"
	ErrCodeInternal       ErrorCode = "INTERNAL_ERROR"
)

type APIError struct {
	Status  int       `json:"-"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("APIError[%s]: %s", e.Code, e.Message)
}

func New(status int, code ErrorCode, message string) *APIError {
	return &APIError{Status: status, Code: code, Message: message}
}

func NotFound(kind, id string) *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found", kind),
		Details: id,
	}
}

// FromQuery maps pipeline errors to 400 responses. Anything else is an internal error.
func FromQuery(err error) *APIError {
	var code ErrorCode
	switch {
	case errors.Is(err, query.ErrUnknownSortKey):
		code = ErrCodeUnknownSortKey
	case errors.Is(err, query.ErrUnknownFilter):
		code = ErrCodeUnknownFilter
	case errors.Is(err, query.ErrUnknownBucket):
		code = ErrCodeUnknownBucket
	default:
		return &APIError{Status: http.StatusInternalServerError, Code: ErrCodeInternal, Message: "internal error"}
	}
	return &APIError{Status: http.StatusBadRequest, Code: code, Message: err.Error()}
}

// Write sends err as a JSON body. Plain errors become 500s without leaking their text.
func Write(w http.ResponseWriter, err error) {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		apiErr = &APIError{Status: http.StatusInternalServerError, Code: ErrCodeInternal, Message: "internal error"}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)
	json.NewEncoder(w).Encode(apiErr)
}
