package api

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ytbrief/ytbrief/errors"
	"github.com/ytbrief/ytbrief/pipeline"
	"github.com/ytbrief/ytbrief/summary"
	"github.com/ytbrief/ytbrief/validation"
)

type SummaryHandler struct {
	pipeline   *pipeline.Pipeline
	summarizer summary.Service
	validator  *validation.Validator
	logger     *logrus.Logger
}

type summarizeRequest struct {
	Transcript string `json:"transcript"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

type summaryRequest struct {
	VideoURL string `json:"videoUrl"`
}

type summaryResponse struct {
	Transcript string `json:"transcript"`
	Summary    string `json:"summary"`
	Source     string `json:"source,omitempty"`
}

func NewSummaryHandler(
	p *pipeline.Pipeline,
	summarizer summary.Service,
	validator *validation.Validator,
) *SummaryHandler {
	return &SummaryHandler{
		pipeline:   p,
		summarizer: summarizer,
		validator:  validator,
		logger:     logrus.StandardLogger(),
	}
}

// HandleSummarize handles POST /api/summarize: summarize an
// already-acquired transcript.
func (h *SummaryHandler) HandleSummarize(w http.ResponseWriter, r *http.Request) {
	const op = "SummaryHandler.HandleSummarize"
	logger := h.logger.WithField("request_id", requestID(r))

	if err := h.validator.ValidateRequest(r, validation.RequestValidationOpts{
		MaxContentLength: 10 * 1024 * 1024, // transcripts can be large
		RequireJSON:      true,
	}); err != nil {
		respondError(w, r, err)
		return
	}

	var req summarizeRequest
	if err := readJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	if req.Transcript == "" {
		respondError(w, r, errors.InvalidRequest(op, nil, "transcript is required"))
		return
	}

	logger.WithField("transcript_length", len(req.Transcript)).Info("Received summarization request")

	result, err := h.summarizer.Summarize(r.Context(), req.Transcript)
	if err != nil {
		logger.WithError(err).Error("Summarization failed")
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, summarizeResponse{Summary: result})
}

// HandleSummary handles POST /api/summary: the full pipeline from
// video URL to summary in one request.
func (h *SummaryHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	const op = "SummaryHandler.HandleSummary"
	logger := h.logger.WithField("request_id", requestID(r))

	if err := h.validator.ValidateRequest(r, validation.RequestValidationOpts{
		MaxContentLength: 1024 * 1024,
		RequireJSON:      true,
	}); err != nil {
		respondError(w, r, err)
		return
	}

	var req summaryRequest
	if err := readJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	if req.VideoURL == "" {
		respondError(w, r, errors.InvalidURL(op, nil, "videoUrl is required"))
		return
	}

	if err := h.validator.ValidateURL(req.VideoURL); err != nil {
		respondError(w, r, err)
		return
	}

	logger.WithField("url", req.VideoURL).Info("Received summary pipeline request")

	outcome, err := h.pipeline.Run(r.Context(), req.VideoURL)
	if err != nil {
		logger.WithError(err).Error("Summary pipeline failed")
		respondError(w, r, err)
		return
	}

	logger.WithFields(logrus.Fields{
		"video_id": outcome.VideoID,
		"source":   outcome.Source,
	}).Info("Summary pipeline completed")

	respondJSON(w, http.StatusOK, summaryResponse{
		Transcript: outcome.Transcript,
		Summary:    outcome.Summary,
		Source:     outcome.Source,
	})
}
