package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	FallbackModeRemote = "remote"
	FallbackModeLocal  = "local"
	FallbackModeOff    = "off"
)

type Config struct {
	// Server settings
	ServerPort   string        `json:"server_port"`
	ReadTimeout  time.Duration `json:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout"`
	IdleTimeout  time.Duration `json:"idle_timeout"`
	Debug        bool          `json:"debug"`

	// Application paths
	LogDir  string `json:"log_dir"`
	TempDir string `json:"temp_dir"`

	// CORS Configuration
	CORS CORSConfig `json:"cors"`

	// Rate Limiting
	RateLimit RateLimitConfig `json:"rate_limit"`

	// Transcript acquisition
	Transcript TranscriptConfig `json:"transcript"`

	// Summarization
	Summary SummaryConfig `json:"summary"`

	// Application version
	Version string `json:"version"`

	// Request and shutdown timeouts
	RequestTimeout  time.Duration `json:"request_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type TranscriptConfig struct {
	// Language is the preferred caption language code.
	Language string `json:"language"`

	// FallbackMode selects the audio fallback: "remote" calls the audio
	// backend service, "local" shells out to the bundled scripts, "off"
	// disables the fallback entirely.
	FallbackMode string `json:"fallback_mode"`

	// AudioBackendURL is the base URL of the audio download and
	// transcription service (remote mode).
	AudioBackendURL string `json:"audio_backend_url"`

	// Local mode settings.
	PythonPath   string        `json:"python_path"`
	ScriptsPath  string        `json:"scripts_path"`
	WhisperModel string        `json:"whisper_model"`
	FetchTimeout time.Duration `json:"fetch_timeout"`

	// ReportAllErrors keeps every source's failure reachable when the
	// whole chain fails, instead of only the fallback's.
	ReportAllErrors bool `json:"report_all_errors"`
}

type SummaryConfig struct {
	APIKey string `json:"-"`
	Model  string `json:"model"`
}

type CORSConfig struct {
	Enabled          bool     `json:"enabled"`
	AllowedOrigins   []string `json:"allowed_origins"`
	AllowedMethods   []string `json:"allowed_methods"`
	AllowedHeaders   []string `json:"allowed_headers"`
	ExposedHeaders   []string `json:"exposed_headers"`
	AllowCredentials bool     `json:"allow_credentials"`
	MaxAge           int      `json:"max_age"`
}

type RateLimitConfig struct {
	Enabled           bool `json:"enabled"`
	RequestsPerMinute int  `json:"requests_per_minute"`
	BurstSize         int  `json:"burst_size"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Server settings
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		ReadTimeout:  getEnvAsDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout: getEnvAsDuration("WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:  getEnvAsDuration("IDLE_TIMEOUT", 60*time.Second),
		Debug:        getEnvAsBool("DEBUG", false),

		// Application paths
		LogDir:  getEnv("LOG_DIR", "./logs"),
		TempDir: getEnv("TEMP_DIR", os.TempDir()),

		// Application version
		Version: getEnv("VERSION", "1.0.0"),

		// Request and shutdown timeouts
		RequestTimeout:  getEnvAsDuration("REQUEST_TIMEOUT", 10*time.Minute),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 30*time.Second),

		// CORS Configuration
		CORS: CORSConfig{
			Enabled:        getEnvAsBool("CORS_ENABLED", true),
			AllowedOrigins: getEnvAsStringSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods: getEnvAsStringSlice(
				"CORS_ALLOWED_METHODS",
				[]string{"GET", "POST", "OPTIONS"},
			),
			AllowedHeaders:   getEnvAsStringSlice("CORS_ALLOWED_HEADERS", []string{"Content-Type"}),
			ExposedHeaders:   getEnvAsStringSlice("CORS_EXPOSED_HEADERS", []string{}),
			AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", false),
			MaxAge:           getEnvAsInt("CORS_MAX_AGE", 86400),
		},

		// Rate Limiting
		RateLimit: RateLimitConfig{
			Enabled:           getEnvAsBool("RATE_LIMIT_ENABLED", true),
			RequestsPerMinute: getEnvAsInt("RATE_LIMIT_RPM", 60),
			BurstSize:         getEnvAsInt("RATE_LIMIT_BURST", 10),
		},

		// Transcript acquisition
		Transcript: TranscriptConfig{
			Language:        getEnv("TRANSCRIPT_LANGUAGE", "en"),
			FallbackMode:    getEnv("FALLBACK_MODE", FallbackModeRemote),
			AudioBackendURL: getEnv("AUDIO_BACKEND_URL", "http://localhost:5555"),
			PythonPath:      getEnv("PYTHON_PATH", "python3"),
			ScriptsPath:     getEnv("SCRIPTS_PATH", "./scripts/py"),
			WhisperModel:    getEnv("WHISPER_MODEL", "base.en"),
			FetchTimeout:    getEnvAsDuration("TRANSCRIPT_FETCH_TIMEOUT", 5*time.Minute),
			ReportAllErrors: getEnvAsBool("REPORT_ALL_SOURCE_ERRORS", false),
		},

		// Summarization
		Summary: SummaryConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("SUMMARY_MODEL", "gemini-2.0-flash"),
		},
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validateTimeouts(c); err != nil {
		return err
	}
	if err := validateTranscript(c); err != nil {
		return err
	}
	return nil
}

func validateTimeouts(c *Config) error {
	if c.ReadTimeout <= 0 {
		return fmt.Errorf("read timeout must be positive")
	}
	if c.WriteTimeout <= 0 {
		return fmt.Errorf("write timeout must be positive")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	return nil
}

func validateTranscript(c *Config) error {
	switch c.Transcript.FallbackMode {
	case FallbackModeRemote:
		if c.Transcript.AudioBackendURL == "" {
			return fmt.Errorf("audio backend URL is required in remote fallback mode")
		}
	case FallbackModeLocal:
		if c.Transcript.ScriptsPath == "" {
			return fmt.Errorf("scripts path is required in local fallback mode")
		}
	case FallbackModeOff:
	default:
		return fmt.Errorf("unknown fallback mode: %s", c.Transcript.FallbackMode)
	}
	return nil
}

// Helper functions for reading environment variables
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsStringSlice(key string, defaultValue []string) []string {
	if value, exists := os.LookupEnv(key); exists {
		if value = strings.TrimSpace(value); value != "" {
			return strings.Split(value, ",")
		}
	}
	return defaultValue
}
