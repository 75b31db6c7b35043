package observability

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	logger *zap.SugaredLogger
}

// NewLogger writes JSON lines to path. An empty path disables logging, the
// terminal belongs to the UI.
func NewLogger(component, path, level string) (Logger, error) {
	if strings.TrimSpace(path) == "" {
		return Nop(), nil
	}
	cfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return Logger{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.DisableStacktrace = true
	base, err := cfg.Build()
	if err != nil {
		return Logger{}, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return Logger{logger: base.Sugar().Named(component)}, nil
}

func Nop() Logger {
	return Logger{logger: zap.NewNop().Sugar()}
}

// With returns a child logger whose name is suffixed with component.
func (l Logger) With(component string) Logger {
	return Logger{logger: l.sugar().Named(component)}
}

func (l Logger) Debugf(format string, args ...any) {
	l.sugar().Debugf(format, args...)
}

func (l Logger) Infof(format string, args ...any) {
	l.sugar().Infof(format, args...)
}

func (l Logger) Warnf(format string, args ...any) {
	l.sugar().Warnf(format, args...)
}

func (l Logger) Errorf(format string, args ...any) {
	l.sugar().Errorf(format, args...)
}

func (l Logger) Sync() error {
	return l.sugar().Sync()
}

// zero Logger values are usable and discard everything.
func (l Logger) sugar() *zap.SugaredLogger {
	if l.logger == nil {
		return zap.NewNop().Sugar()
	}
	return l.logger
}
