package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ytbrief/ytbrief/config"
	"github.com/ytbrief/ytbrief/handlers/api"
	"github.com/ytbrief/ytbrief/logger"
	"github.com/ytbrief/ytbrief/pipeline"
	"github.com/ytbrief/ytbrief/scripts"
	"github.com/ytbrief/ytbrief/summary"
	"github.com/ytbrief/ytbrief/transcript"
)

func main() {
	// Missing .env is fine; the environment may be set externally.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	if err := logger.Init(cfg.LogDir, cfg.Debug); err != nil {
		logrus.WithError(err).Fatal("Failed to initialize logger")
	}
	log := logrus.StandardLogger()

	transcriber, full, summarizer, err := buildPipelines(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to build pipelines")
	}

	srv := api.NewServer(cfg,
		api.WithPipelines(transcriber, full, summarizer),
		api.WithLogger(log),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.WithError(err).Fatal("Server failed")
	case sig := <-stop:
		log.WithField("signal", sig.String()).Info("Received shutdown signal")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("Server shutdown failed")
	}
	log.Info("Server stopped")
}

// buildPipelines assembles the acquisition chains. The transcribe
// endpoint gets the direct source only; the summary endpoint gets the
// direct source plus the configured fallback.
func buildPipelines(cfg *config.Config) (*pipeline.Pipeline, *pipeline.Pipeline, summary.Service, error) {
	httpClient := &http.Client{Timeout: cfg.Transcript.FetchTimeout}

	direct := transcript.NewYouTubeSource(
		transcript.WithHTTPClient(httpClient),
		transcript.WithLanguage(cfg.Transcript.Language),
	)

	sources := []transcript.Source{direct}

	switch cfg.Transcript.FallbackMode {
	case config.FallbackModeRemote:
		fallback := transcript.NewAudioSource(
			cfg.Transcript.AudioBackendURL,
			transcript.WithAudioHTTPClient(httpClient),
		)
		sources = append(sources, fallback)
	case config.FallbackModeLocal:
		runner, err := scripts.NewScriptRunner(scripts.Config{
			PythonPath:  cfg.Transcript.PythonPath,
			ScriptsPath: cfg.Transcript.ScriptsPath,
			Timeout:     cfg.Transcript.FetchTimeout,
			TempDir:     cfg.TempDir,
			Model:       cfg.Transcript.WhisperModel,
		})
		if err != nil {
			return nil, nil, nil, err
		}
		sources = append(sources, transcript.NewScriptSource(runner))
	case config.FallbackModeOff:
		// Direct source only.
	}

	summarizer := summary.NewService(summary.Config{
		APIKey: cfg.Summary.APIKey,
		Model:  cfg.Summary.Model,
	})

	pipeCfg := pipeline.Config{ReportAllErrors: cfg.Transcript.ReportAllErrors}

	transcriber := pipeline.New([]transcript.Source{direct}, summarizer, pipeCfg)
	full := pipeline.New(sources, summarizer, pipeCfg)

	return transcriber, full, summarizer, nil
}
