package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ytbrief/ytbrief/errors"
)

// AudioSource is the fallback acquisition path: it asks the audio
// backend to download the video's audio and run speech-to-text on it.
// Considerably slower and costlier than captions, so the pipeline only
// reaches it when the direct source fails.
type AudioSource struct {
	client  *http.Client
	baseURL string
	logger  *logrus.Logger
}

type AudioOption func(*AudioSource)

func WithAudioHTTPClient(client *http.Client) AudioOption {
	return func(s *AudioSource) { s.client = client }
}

func NewAudioSource(baseURL string, opts ...AudioOption) *AudioSource {
	s := &AudioSource{
		client:  &http.Client{Timeout: 10 * time.Minute},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *AudioSource) Name() string { return "audio_transcription" }

type audioRequest struct {
	VideoURL   string `json:"videoUrl"`
	Transcribe bool   `json:"transcribe"`
}

type audioResponse struct {
	Success        bool   `json:"success"`
	Transcript     string `json:"transcript,omitempty"`
	AudioPath      string `json:"audio_path,omitempty"`
	TranscriptPath string `json:"transcript_path,omitempty"`
	Path           string `json:"path,omitempty"`
	Message        string `json:"message,omitempty"`
	Error          string `json:"error,omitempty"`
}

func (s *AudioSource) Fetch(ctx context.Context, videoID string) (Transcript, error) {
	const op = "AudioSource.Fetch"
	logger := s.logger.WithField("video_id", videoID)
	logger.Info("Starting audio transcription fallback")

	payload, err := json.Marshal(audioRequest{
		VideoURL:   "https://www.youtube.com/watch?v=" + videoID,
		Transcribe: true,
	})
	if err != nil {
		return nil, errors.Internal(op, err, "Failed to encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+"/api/downloadaudio", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.AudioTranscription(op, err, "Failed to build transcription request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.AudioTranscription(op,
			pkgerrors.Wrap(err, "audio backend request failed"),
			"Audio transcription service is unreachable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.AudioTranscription(op, err, "Failed to read transcription response")
	}

	var result audioResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errors.AudioTranscription(op,
			pkgerrors.Wrap(err, "decoding audio backend response"),
			"Audio transcription service returned an invalid response")
	}

	if !result.Success || resp.StatusCode != http.StatusOK {
		msg := result.Error
		if msg == "" {
			msg = fmt.Sprintf("audio backend returned status %d", resp.StatusCode)
		}
		return nil, errors.AudioTranscription(op, fmt.Errorf("%s", msg), "Audio transcription failed")
	}

	if result.Transcript == "" {
		return nil, errors.AudioTranscription(op, nil, "Audio transcription produced no text")
	}

	logger.WithField("length", len(result.Transcript)).Info("Audio transcription completed")
	return FromText(result.Transcript), nil
}
