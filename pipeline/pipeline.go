// Package pipeline sequences transcript acquisition and summarization
// into a single outcome: extract the video ID, try each transcript
// source in order, then summarize the assembled text.
package pipeline

import (
	"context"
	stderrors "errors"

	"github.com/sirupsen/logrus"

	"github.com/ytbrief/ytbrief/errors"
	"github.com/ytbrief/ytbrief/summary"
	"github.com/ytbrief/ytbrief/transcript"
	"github.com/ytbrief/ytbrief/videoid"
)

// Outcome is the terminal result of a successful run. Values are
// request-scoped; nothing is retained between runs.
type Outcome struct {
	VideoID    string `json:"video_id"`
	Transcript string `json:"transcript"`
	Summary    string `json:"summary,omitempty"`
	Source     string `json:"source"`
}

type Config struct {
	// FallbackOn decides whether a source failure may trigger the next
	// source. Nil means blanket fallback: any failure falls through.
	FallbackOn func(error) bool

	// ReportAllErrors controls the failure reported when every source
	// fails. By default only the last source's error is returned; when
	// set, the reported error additionally wraps each earlier source's
	// error so the primary failure reason stays diagnosable.
	ReportAllErrors bool
}

type Pipeline struct {
	sources    []transcript.Source
	summarizer summary.Service
	config     Config
	logger     *logrus.Logger
}

// New builds a pipeline over an ordered source list. Sources are tried
// cheapest first; the summarizer may be nil only if Summarize is never
// called.
func New(sources []transcript.Source, summarizer summary.Service, config Config) *Pipeline {
	return &Pipeline{
		sources:    sources,
		summarizer: summarizer,
		config:     config,
		logger:     logrus.StandardLogger(),
	}
}

// Transcribe runs the acquisition half of the pipeline: ID extraction
// and the source chain. The outcome carries the assembled transcript
// and the name of the source that produced it.
func (p *Pipeline) Transcribe(ctx context.Context, videoURL string) (*Outcome, error) {
	id, err := videoid.Extract(videoURL)
	if err != nil {
		return nil, err
	}

	text, source, err := p.acquire(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Outcome{
		VideoID:    id,
		Transcript: text,
		Source:     source,
	}, nil
}

// Run executes the full chain: extract, acquire, summarize. No partial
// outcome is returned; a summarization failure fails the run.
func (p *Pipeline) Run(ctx context.Context, videoURL string) (*Outcome, error) {
	outcome, err := p.Transcribe(ctx, videoURL)
	if err != nil {
		return nil, err
	}

	summaryText, err := p.summarizer.Summarize(ctx, outcome.Transcript)
	if err != nil {
		return nil, err
	}

	outcome.Summary = summaryText
	return outcome, nil
}

// acquire tries each source in order and short-circuits on the first
// success. Each source is invoked at most once per run; there are no
// retries.
func (p *Pipeline) acquire(ctx context.Context, videoID string) (string, string, error) {
	const op = "Pipeline.acquire"
	logger := p.logger.WithField("video_id", videoID)

	if len(p.sources) == 0 {
		return "", "", errors.Internal(op, nil, "No transcript sources configured")
	}

	var sourceErrs []error
	for i, source := range p.sources {
		tr, err := source.Fetch(ctx, videoID)
		if err == nil {
			logger.WithField("source", source.Name()).Info("Transcript acquired")
			return tr.Assemble(), source.Name(), nil
		}

		logger.WithError(err).WithField("source", source.Name()).Warn("Transcript source failed")
		sourceErrs = append(sourceErrs, err)

		last := i == len(p.sources)-1
		if last {
			break
		}
		if p.config.FallbackOn != nil && !p.config.FallbackOn(err) {
			logger.WithField("source", source.Name()).Info("Fallback suppressed by policy")
			break
		}
	}

	return "", "", p.composeFailure(op, sourceErrs)
}

// composeFailure reports the final error after every attempted source
// has failed. The last attempted source's failure is the cause; with
// ReportAllErrors the earlier failures remain reachable through Unwrap.
func (p *Pipeline) composeFailure(op string, sourceErrs []error) error {
	last := sourceErrs[len(sourceErrs)-1]

	if !p.config.ReportAllErrors || len(sourceErrs) == 1 {
		return last
	}

	return errors.New(
		errors.KindOf(last),
		errors.HTTPStatus(last),
		op,
		stderrors.Join(sourceErrs...),
		errors.Message(last),
	)
}
