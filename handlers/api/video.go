package api

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ytbrief/ytbrief/errors"
	"github.com/ytbrief/ytbrief/pipeline"
	"github.com/ytbrief/ytbrief/validation"
)

type VideoHandler struct {
	pipeline  *pipeline.Pipeline
	validator *validation.Validator
	logger    *logrus.Logger
}

type transcribeRequest struct {
	VideoURL string `json:"videoUrl"`
}

type transcribeResponse struct {
	Transcript string `json:"transcript"`
	Source     string `json:"source,omitempty"`
}

func NewVideoHandler(p *pipeline.Pipeline, validator *validation.Validator) *VideoHandler {
	return &VideoHandler{
		pipeline:  p,
		validator: validator,
		logger:    logrus.StandardLogger(),
	}
}

// HandleTranscribe handles POST /api/transcribe
func (h *VideoHandler) HandleTranscribe(w http.ResponseWriter, r *http.Request) {
	const op = "VideoHandler.HandleTranscribe"
	logger := h.logger.WithField("request_id", requestID(r))

	if err := h.validator.ValidateRequest(r, validation.RequestValidationOpts{
		MaxContentLength: 1024 * 1024, // 1MB
		RequireJSON:      true,
	}); err != nil {
		respondError(w, r, err)
		return
	}

	var req transcribeRequest
	if err := readJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	if req.VideoURL == "" {
		respondError(w, r, errors.InvalidURL(op, nil, "videoUrl is required"))
		return
	}

	logger.WithField("url", req.VideoURL).Info("Received transcription request")

	if err := h.validator.ValidateURL(req.VideoURL); err != nil {
		respondError(w, r, err)
		return
	}

	outcome, err := h.pipeline.Transcribe(r.Context(), req.VideoURL)
	if err != nil {
		logger.WithError(err).Error("Transcription failed")
		respondError(w, r, err)
		return
	}

	logger.WithFields(logrus.Fields{
		"video_id": outcome.VideoID,
		"source":   outcome.Source,
		"length":   len(outcome.Transcript),
	}).Info("Transcription completed")

	respondJSON(w, http.StatusOK, transcribeResponse{
		Transcript: outcome.Transcript,
		Source:     outcome.Source,
	})
}
