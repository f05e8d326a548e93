package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger wraps zap with optional file output
type ZapLogger struct {
	*zap.Logger
	sugar    *zap.SugaredLogger
	filePath string
	file     *os.File
}

// NewZapLogger creates a new application logger
func NewZapLogger(config models.LoggerConfig) (*ZapLogger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(config.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	var cores []zapcore.Core
	cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level))

	zl := &ZapLogger{filePath: config.FilePath}

	if config.FilePath != "" {
		if err := zl.setupFileOutput(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(zl.file), level))
	}

	core := zapcore.NewTee(cores...)
	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	zl.Logger = logger
	zl.sugar = logger.Sugar()
	return zl, nil
}

// InitFromConfig builds a logger from application config and installs it
// as the global logger.
func InitFromConfig(configs *models.Config) (*ZapLogger, error) {
	zl, err := NewZapLogger(configs.Logger)
	if err != nil {
		return nil, err
	}
	SetGlobalLogger(zl)
	return zl, nil
}

func (zl *ZapLogger) setupFileOutput(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	zl.file = file
	return nil
}

// Close flushes buffered logs and closes the log file if any
func (zl *ZapLogger) Close() error {
	_ = zl.Logger.Sync()
	_ = zl.sugar.Sync()

	if zl.file != nil {
		return zl.file.Close()
	}
	return nil
}

// Sugar returns the sugared logger
func (zl *ZapLogger) Sugar() *zap.SugaredLogger {
	return zl.sugar
}

// WithError returns a logger with an error field attached
func (zl *ZapLogger) WithError(err error) *zap.Logger {
	return zl.Logger.With(zap.Error(err))
}
