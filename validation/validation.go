package validation

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ytbrief/ytbrief/errors"
)

type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateURL performs the cheap, offline URL checks before the
// pipeline touches the network.
func (v *Validator) ValidateURL(urlStr string) error {
	const op = "Validator.ValidateURL"

	if urlStr == "" {
		return errors.InvalidURL(op, nil, "Video URL is required")
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return errors.InvalidURL(op, err, "Invalid URL format")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return errors.InvalidURL(op, nil, "URL must use HTTP or HTTPS")
	}

	host := parsedURL.Hostname()
	if !strings.Contains(host, "youtube.com") && !strings.Contains(host, "youtu.be") {
		return errors.InvalidURL(op, nil, "Only YouTube URLs are supported")
	}

	return nil
}

// RequestValidationOpts holds options for request validation
type RequestValidationOpts struct {
	MaxContentLength int64
	RequireJSON      bool
}

// ValidateRequest validates HTTP request shape. Method dispatch is the
// router's job; this only checks body expectations.
func (v *Validator) ValidateRequest(r *http.Request, opts RequestValidationOpts) error {
	const op = "Validator.ValidateRequest"

	if opts.RequireJSON {
		if contentType := r.Header.Get("Content-Type"); !strings.Contains(contentType, "application/json") {
			return errors.InvalidRequest(op, nil, "Content-Type must be application/json")
		}
	}

	if opts.MaxContentLength > 0 && r.ContentLength > opts.MaxContentLength {
		return errors.New(errors.KindInvalidRequest, http.StatusRequestEntityTooLarge, op, nil,
			fmt.Sprintf("Request body exceeds %d bytes", opts.MaxContentLength))
	}

	return nil
}
