package transcript

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ytbrief/ytbrief/errors"
	"github.com/ytbrief/ytbrief/scripts"
)

// Transcriber is the slice of the script runner the source needs.
// *scripts.ScriptRunner satisfies it.
type Transcriber interface {
	Transcribe(ctx context.Context, url string) (*scripts.TranscriptionResult, error)
}

// ScriptSource is the local variant of the audio fallback: instead of
// calling a remote audio backend it shells out to the bundled
// yt-dlp/Whisper helper. Selected with FALLBACK_MODE=local.
type ScriptSource struct {
	runner Transcriber
	logger *logrus.Logger
}

func NewScriptSource(runner Transcriber) *ScriptSource {
	return &ScriptSource{
		runner: runner,
		logger: logrus.StandardLogger(),
	}
}

func (s *ScriptSource) Name() string { return "audio_transcription_local" }

func (s *ScriptSource) Fetch(ctx context.Context, videoID string) (Transcript, error) {
	const op = "ScriptSource.Fetch"
	logger := s.logger.WithField("video_id", videoID)
	logger.Info("Starting local audio transcription fallback")

	result, err := s.runner.Transcribe(ctx, "https://www.youtube.com/watch?v="+videoID)
	if err != nil {
		return nil, errors.AudioTranscription(op, err, "Audio transcription failed")
	}

	if !result.Success || result.Error != "" {
		return nil, errors.AudioTranscription(op,
			fmt.Errorf("transcribe script: %s", result.Error),
			"Audio transcription failed")
	}
	if result.Text == "" {
		return nil, errors.AudioTranscription(op, nil, "Audio transcription produced no text")
	}

	logger.WithFields(logrus.Fields{
		"length": len(result.Text),
		"model":  result.Model,
	}).Info("Local audio transcription completed")

	return FromText(result.Text), nil
}
