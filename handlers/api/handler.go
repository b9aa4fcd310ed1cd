package api

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ytbrief/ytbrief/errors"
	"github.com/ytbrief/ytbrief/middleware"
)

// errorResponse is the failure payload. Client errors carry an optional
// user-facing message; server errors carry diagnostic details.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Failed to encode response")
	}
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.HTTPStatus(err)

	logrus.WithFields(logrus.Fields{
		"error":      err,
		"kind":       errors.KindOf(err),
		"status":     code,
		"request_id": middleware.GetRequestID(r.Context()),
		"path":       r.URL.Path,
		"method":     r.Method,
	}).Error("Request error")

	var body errorResponse
	switch errors.KindOf(err) {
	case errors.KindInvalidURL:
		body = errorResponse{Error: "Invalid YouTube URL", Message: errors.Message(err)}
	case errors.KindTranscriptUnavailable:
		body = errorResponse{Error: "Transcript Unavailable", Message: errors.Message(err)}
	default:
		if code < http.StatusInternalServerError {
			body = errorResponse{Error: errors.Message(err)}
		} else {
			body = errorResponse{Error: "Internal server error", Details: errors.Message(err)}
		}
	}

	respondJSON(w, code, body)
}

func requestID(r *http.Request) string {
	return middleware.GetRequestID(r.Context())
}

func readJSON(r *http.Request, v interface{}) error {
	const op = "api.readJSON"
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.InvalidRequest(op, err, "Invalid JSON body")
	}
	return nil
}
