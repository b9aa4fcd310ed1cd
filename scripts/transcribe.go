package scripts

import (
	"context"
	"encoding/json"
)

const transcribeScript = "transcribe.py"

// TranscriptionResult is the JSON payload emitted by transcribe.py.
type TranscriptionResult struct {
	Success  bool    `json:"success"`
	Text     string  `json:"text"`
	Model    string  `json:"model_name,omitempty"`
	Duration float64 `json:"duration,omitempty"`
	Title    *string `json:"title,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// Transcribe downloads the audio for url and runs Whisper on it.
func (r *ScriptRunner) Transcribe(ctx context.Context, url string) (*TranscriptionResult, error) {
	const op = "ScriptRunner.Transcribe"

	args := map[string]string{
		"url":   url,
		"model": r.config.GetModel(),
	}

	output, err := r.RunScript(ctx, transcribeScript, args, nil)
	if err != nil {
		return nil, err
	}

	var result TranscriptionResult
	if err := json.Unmarshal(output, &result); err != nil {
		return nil, newScriptError(op, err, "failed to parse transcription result")
	}

	return &result, nil
}
