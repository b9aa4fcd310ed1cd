// Package errors defines the application error type and the failure
// taxonomy used across the transcript and summary pipeline.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so handlers and the pipeline can react
// without string matching.
type Kind string

const (
	KindInvalidURL            Kind = "invalid_url"
	KindInvalidRequest        Kind = "invalid_request"
	KindTranscriptUnavailable Kind = "transcript_unavailable"
	KindTranscriptSource      Kind = "transcript_source_error"
	KindAudioTranscription    Kind = "audio_transcription_error"
	KindSummarization         Kind = "summarization_error"
	KindInternal              Kind = "internal_error"
)

type AppError struct {
	Kind    Kind   `json:"-"`
	Code    int    `json:"-"`
	Message string `json:"error"`
	Op      string `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, code int, op string, err error, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

func InvalidURL(op string, err error, message string) *AppError {
	return New(KindInvalidURL, http.StatusBadRequest, op, err, message)
}

// InvalidRequest covers malformed request shapes: bad JSON, wrong
// content type, oversized bodies. Distinct from KindInternal so the
// caller's mistakes are not logged as ours.
func InvalidRequest(op string, err error, message string) *AppError {
	return New(KindInvalidRequest, http.StatusBadRequest, op, err, message)
}

func TranscriptUnavailable(op string, err error, message string) *AppError {
	return New(KindTranscriptUnavailable, http.StatusBadRequest, op, err, message)
}

func TranscriptSource(op string, err error, message string) *AppError {
	return New(KindTranscriptSource, http.StatusInternalServerError, op, err, message)
}

func AudioTranscription(op string, err error, message string) *AppError {
	return New(KindAudioTranscription, http.StatusInternalServerError, op, err, message)
}

func Summarization(op string, err error, message string) *AppError {
	return New(KindSummarization, http.StatusInternalServerError, op, err, message)
}

func Internal(op string, err error, message string) *AppError {
	return New(KindInternal, http.StatusInternalServerError, op, err, message)
}

// KindOf returns the kind of err, or KindInternal for errors that did
// not originate from this package.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// HTTPStatus maps err to the response status the API should use.
// Unclassified errors map to 500.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// Message returns the user-facing message for err, falling back to a
// generic message for unclassified errors.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}
