package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines an interface for the logger used across the repository.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
}

var _ Logger = &loggerImpl{}

type loggerImpl struct {
	zapLogger *zap.Logger
}

// NewLogger creates a new logger.
// If isProduction is true, the logger is configured for production with
// JSON encoding. Otherwise, a development config is used.
// If logFileName is non-empty, the logger writes to the given file in
// addition to stdout.
func NewLogger(isProduction bool, logFileName string, logLevel string) (Logger, error) {
	var config zap.Config
	if isProduction {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	config.Level = zap.NewAtomicLevelAt(level)

	config.OutputPaths = []string{"stdout"}
	if logFileName != "" {
		config.OutputPaths = append(config.OutputPaths, logFileName)
	}

	zapLogger, err := config.Build()
	if err != nil {
		return nil, err
	}

	return &loggerImpl{
		zapLogger: zapLogger,
	}, nil
}

func (l *loggerImpl) Debug(msg string, fields ...zap.Field) {
	l.zapLogger.Debug(msg, fields...)
}

func (l *loggerImpl) Info(msg string, fields ...zap.Field) {
	l.zapLogger.Info(msg, fields...)
}

func (l *loggerImpl) Warn(msg string, fields ...zap.Field) {
	l.zapLogger.Warn(msg, fields...)
}

func (l *loggerImpl) Error(msg string, fields ...zap.Field) {
	l.zapLogger.Error(msg, fields...)
}

var _ Logger = &NoOpLogger{}

// NoOpLogger is a logger that does nothing. Useful in tests.
type NoOpLogger struct{}

func (l *NoOpLogger) Debug(msg string, fields ...zap.Field) {}

func (l *NoOpLogger) Info(msg string, fields ...zap.Field) {}

func (l *NoOpLogger) Warn(msg string, fields ...zap.Field) {}

func (l *NoOpLogger) Error(msg string, fields ...zap.Field) {}
