// Package logger configures the process-wide logrus logger with a
// rotating file sink alongside stdout.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init wires the standard logrus logger to stdout and a rotating log
// file under logDir. Debug switches to the text formatter and debug
// level for local development.
func Init(logDir string, debug bool) error {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	logFile := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "app.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	logger := logrus.StandardLogger()
	logger.SetOutput(io.MultiWriter(os.Stdout, logFile))

	if debug {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return nil
}
