package summary

import (
	"context"
	"strings"
	"testing"

	"github.com/ytbrief/ytbrief/errors"
)

func TestBuildPromptEmbedsTranscript(t *testing.T) {
	prompt := buildPrompt("Hello world")

	if !strings.Contains(prompt, `"Hello world"`) {
		t.Errorf("prompt does not embed transcript verbatim:\n%s", prompt)
	}

	// All five authored instructions must survive template changes.
	for _, instruction := range []string{
		"Identify Key Points",
		"Organize Information",
		"Summarize Each Point",
		"Bullet-Point Format",
		"Revise for Clarity and Brevity",
	} {
		if !strings.Contains(prompt, instruction) {
			t.Errorf("prompt missing instruction %q", instruction)
		}
	}
}

func TestBuildPromptNoTruncation(t *testing.T) {
	long := strings.Repeat("transcript content ", 10000)
	prompt := buildPrompt(long)

	if !strings.Contains(prompt, long) {
		t.Error("long transcript was altered or truncated in prompt")
	}
}

func TestSummarizeMissingCredential(t *testing.T) {
	svc := NewService(Config{Model: "gemini-2.0-flash"})

	_, err := svc.Summarize(context.Background(), "some transcript")
	if err == nil {
		t.Fatal("expected error when credential is missing")
	}
	if !errors.IsKind(err, errors.KindSummarization) {
		t.Errorf("expected summarization kind, got %q", errors.KindOf(err))
	}
}
