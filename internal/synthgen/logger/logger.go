package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.SugaredLogger
)

// LogConfig controls the global logger.
type LogConfig struct {
	Level string
	// File, when set, receives logs in addition to stderr.
	File        string
	Development bool
}

// InitLogger initializes the global sugared logger.
func InitLogger(lc LogConfig) error {
	cfg := zap.NewProductionConfig()
	if lc.Development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(lc.Level))
	cfg.OutputPaths = []string{"stderr"}
	if lc.File != "" {
		cfg.OutputPaths = append(cfg.OutputPaths, lc.File)
	}

	z, err := cfg.Build()
	if err != nil {
		return err
	}

	logger = z.Sugar()
	return nil
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger. Tests use it with zap.NewNop().
func SetLogger(l *zap.Logger) {
	logger = l.Sugar()
}

// L returns the global sugared logger.
// If InitLogger has not been called, it initializes at info level.
func L() *zap.SugaredLogger {
	if logger == nil {
		_ = InitLogger(LogConfig{Level: "info"})
	}
	return logger
}
