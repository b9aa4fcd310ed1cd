package summary

import "context"

// Service turns an assembled transcript into a bullet-point summary.
type Service interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}

type Config struct {
	// APIKey is the generation-service credential. Injected here rather
	// than read from ambient process state so the service stays testable;
	// a missing key surfaces as a summarization error at call time.
	APIKey string

	// Model is the generation model identifier, e.g. "gemini-2.0-flash".
	Model string
}
