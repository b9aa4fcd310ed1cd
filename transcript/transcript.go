// Package transcript acquires video transcripts. It defines the
// transcript data model and the acquisition sources the pipeline
// orchestrates: platform captions first, audio transcription as the
// fallback.
package transcript

import (
	"context"
	"strings"
)

// Segment is one timed caption line. Start and Duration are seconds.
// Only Text is consumed downstream; ordering is significant.
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Transcript is an ordered sequence of segments for one video.
type Transcript []Segment

// Assemble reduces the transcript to a single string: segment texts
// joined with single spaces in original order, no trimming or other
// normalization. An empty transcript assembles to "".
func (t Transcript) Assemble() string {
	if len(t) == 0 {
		return ""
	}

	parts := make([]string, len(t))
	for i, seg := range t {
		parts[i] = seg.Text
	}
	return strings.Join(parts, " ")
}

// FromText wraps already-assembled text in a single-segment transcript.
// Used by sources that only produce flat text, such as audio
// transcription.
func FromText(text string) Transcript {
	if text == "" {
		return Transcript{}
	}
	return Transcript{{Text: text}}
}

// Source acquires a transcript for a video ID. Implementations perform
// at most one outbound call sequence per Fetch and do not retry.
type Source interface {
	// Name identifies the source in logs and outcome attribution.
	Name() string

	Fetch(ctx context.Context, videoID string) (Transcript, error)
}
