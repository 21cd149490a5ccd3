package logger

import (
	"sync"

	"go.uber.org/zap"

	"github.com/philipp01105/log11/colors"
	"github.com/philipp01105/log11/core"
	"github.com/philipp01105/log11/sink"
)

var (
	defaultRegistry = New()
	defaultMu       sync.RWMutex
)

// Default returns the process-wide default registry.
func Default() *Registry {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultRegistry
}

// SetDefault replaces the default registry. Tests use this to run against
// an isolated instance without shared teardown.
func SetDefault(r *Registry) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = r
}

// L returns the default registry's logger, lazily installing the stdout
// default sink when nothing is configured yet.
func L() *Logger {
	return Default().Logger()
}

// Package-level convenience functions using the default registry

// AddOutput registers a named sink on the default registry.
func AddOutput(cfg sink.Config) error {
	return Default().AddOutput(cfg)
}

// Clear empties the default registry and tears down its sinks.
func Clear() error {
	return Default().Clear()
}

// SetGlobalLevel updates every default-registry sink's threshold.
func SetGlobalLevel(lvl core.Level) error {
	return Default().SetGlobalLevel(lvl)
}

// AddLevel registers a custom level on the default registry.
func AddLevel(name string, rank int, color colors.Color) (EmitFunc, error) {
	return Default().AddLevel(name, rank, color)
}

// Sync flushes the default registry's sinks.
func Sync() error {
	return Default().Sync()
}

// With returns a default-registry logger with pre-bound fields.
func With(fields ...zap.Field) *Logger {
	return L().With(fields...)
}
