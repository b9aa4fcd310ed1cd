// Package scripts runs the bundled Python helpers. The local fallback
// path uses them to download audio with yt-dlp and transcribe it with
// Whisper when no remote audio backend is configured.
package scripts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// Config holds the configuration for the ScriptRunner.
type Config struct {
	PythonPath  string        // Path to Python executable
	ScriptsPath string        // Path to Python scripts directory
	Timeout     time.Duration // Script execution timeout
	TempDir     string        // Working directory for downloaded audio
	Environment []string      // Additional environment variables
	Model       string        // Whisper model to use
}

// GetModel returns the configured Whisper model or a fallback value.
func (cfg *Config) GetModel() string {
	if cfg.Model != "" {
		return cfg.Model
	}
	return "base.en"
}

type ScriptRunner struct {
	config Config
	logger *logrus.Logger
}

func NewScriptRunner(cfg Config) (*ScriptRunner, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return &ScriptRunner{config: cfg, logger: logrus.StandardLogger()}, nil
}

func validateConfig(cfg Config) error {
	if _, err := os.Stat(cfg.ScriptsPath); os.IsNotExist(err) {
		return fmt.Errorf("scripts directory does not exist: %s", cfg.ScriptsPath)
	}

	scriptPath := filepath.Join(cfg.ScriptsPath, transcribeScript)
	if _, err := os.Stat(scriptPath); os.IsNotExist(err) {
		return fmt.Errorf("required script not found: %s", scriptPath)
	}
	return nil
}

func (r *ScriptRunner) RunScript(
	ctx context.Context,
	scriptName string,
	args map[string]string,
	flags []string,
) ([]byte, error) {
	const op = "ScriptRunner.RunScript"
	scriptPath := filepath.Join(r.config.ScriptsPath, scriptName)

	r.logger.WithFields(logrus.Fields{
		"script": scriptName,
		"args":   args,
		"flags":  flags,
	}).Debug("Executing script")

	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	cmdArgs := buildCommandArgs(scriptPath, args, flags)
	cmd := exec.CommandContext(ctx, r.config.PythonPath, cmdArgs...)
	cmd.Dir = r.config.TempDir
	cmd.Env = buildEnvironment(r.config.Environment)

	output, err := r.executeCommand(cmd)
	if err != nil {
		return nil, newScriptError(op, err, "script execution failed")
	}

	return output, nil
}

func buildCommandArgs(scriptPath string, args map[string]string, flags []string) []string {
	cmdArgs := []string{scriptPath}
	for k, v := range args {
		if v != "" {
			cmdArgs = append(cmdArgs, fmt.Sprintf("--%s", k), v)
		}
	}
	for _, flag := range flags {
		cmdArgs = append(cmdArgs, fmt.Sprintf("--%s", flag))
	}
	return cmdArgs
}

func buildEnvironment(additionalEnv []string) []string {
	env := append(os.Environ(),
		"PYTHONUNBUFFERED=1",
	)
	if len(additionalEnv) > 0 {
		env = append(env, additionalEnv...)
	}
	return env
}

func (r *ScriptRunner) executeCommand(cmd *exec.Cmd) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrOutput := stderr.String()
		r.logger.WithError(err).
			WithField("stderr", stderrOutput).
			Error("Script execution failed")
		return nil, fmt.Errorf("%v (stderr: %s)", err, stderrOutput)
	}

	output := stdout.Bytes()
	if err := validateJSONOutput(output); err != nil {
		r.logger.WithError(err).
			WithField("output", string(output)).
			Error("Invalid JSON output")
		return nil, err
	}

	return output, nil
}

func validateJSONOutput(output []byte) error {
	var jsonTest interface{}
	if err := json.Unmarshal(output, &jsonTest); err != nil {
		return fmt.Errorf("invalid JSON output: %v", err)
	}
	return nil
}

// ScriptError reports a Python helper failure. Op names the runner
// operation; the wrapped error carries the exec or parse detail,
// including captured stderr.
type ScriptError struct {
	Op      string
	Err     error
	Message string
}

func (e *ScriptError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *ScriptError) Unwrap() error { return e.Err }

func newScriptError(op string, err error, message string) *ScriptError {
	return &ScriptError{Op: op, Err: err, Message: message}
}
