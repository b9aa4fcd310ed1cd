package summary

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"github.com/ytbrief/ytbrief/errors"
)

type service struct {
	config Config
	logger *logrus.Logger

	mu     sync.Mutex
	client *genai.Client
}

// NewService creates a Gemini-backed summarizer. The API client is
// created lazily on first use so that a missing credential is reported
// as a summarization failure instead of aborting startup.
func NewService(config Config) Service {
	return &service{
		config: config,
		logger: logrus.StandardLogger(),
	}
}

func (s *service) Summarize(ctx context.Context, transcript string) (string, error) {
	const op = "SummaryService.Summarize"
	logger := s.logger.WithField("transcript_length", len(transcript))

	client, err := s.getClient(ctx)
	if err != nil {
		return "", err
	}

	prompt := buildPrompt(transcript)
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(prompt)}, genai.RoleUser),
	}
	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}

	logger.WithField("model", s.config.Model).Info("Requesting summary")

	result, err := client.Models.GenerateContent(ctx, s.config.Model, contents, genConfig)
	if err != nil {
		logger.WithError(err).Error("Generation request failed")
		return "", errors.Summarization(op, err, "Failed to generate summary")
	}

	text := result.Text()
	if text == "" {
		return "", errors.Summarization(op, nil, "Generation service returned an empty summary")
	}

	logger.WithField("summary_length", len(text)).Info("Summary generated")
	return text, nil
}

func (s *service) getClient(ctx context.Context) (*genai.Client, error) {
	const op = "SummaryService.getClient"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}

	if s.config.APIKey == "" {
		return nil, errors.Summarization(op, nil, "Generation service credential is not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: s.config.APIKey})
	if err != nil {
		return nil, errors.Summarization(op, err, "Failed to initialize generation client")
	}

	s.client = client
	return client, nil
}
