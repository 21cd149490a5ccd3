package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/log11/core"
	"github.com/philipp01105/log11/sink"
)

// engineLevel is the fixed zapcore level every entry is emitted at. The
// real severity travels in a carrier field (sink.CarryLevel): facade
// ranks must stay out of zapcore.Level, whose values 3..5 (DPanic, Panic,
// Fatal) trigger terminal behavior inside zap.
const engineLevel = zapcore.InfoLevel

// EmitFunc logs a message at the custom level it was created for. See
// Registry.AddLevel.
type EmitFunc func(msg string, fields ...zap.Field)

// Logger is the emission front-end. It stays valid across registry
// rebuilds: every call routes through the registry's current engine.
type Logger struct {
	reg    *Registry
	fields []zap.Field
}

// With returns a Logger that attaches the given fields to every record.
func (l *Logger) With(fields ...zap.Field) *Logger {
	merged := make([]zap.Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)
	return &Logger{reg: l.reg, fields: merged}
}

// Log logs a message at an arbitrary level. Built-in ranks keep their
// built-in names; custom ranks resolve through the registry's level table.
func (l *Logger) Log(lvl core.Level, msg string, fields ...zap.Field) {
	l.emit(l.reg.describe(lvl), msg, fields)
}

// Trace logs a trace message
func (l *Logger) Trace(msg string, fields ...zap.Field) {
	l.emit(core.DescribeLevel(core.TraceLevel), msg, fields)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.emit(core.DescribeLevel(core.DebugLevel), msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.emit(core.DescribeLevel(core.InfoLevel), msg, fields)
}

// Success logs a success message
func (l *Logger) Success(msg string, fields ...zap.Field) {
	l.emit(core.DescribeLevel(core.SuccessLevel), msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.emit(core.DescribeLevel(core.WarningLevel), msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.emit(core.DescribeLevel(core.ErrorLevel), msg, fields)
}

// Critical logs a critical message
func (l *Logger) Critical(msg string, fields ...zap.Field) {
	l.emit(core.DescribeLevel(core.CriticalLevel), msg, fields)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.emit(core.DescribeLevel(core.TraceLevel), fmt.Sprintf(format, args...), nil)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.emit(core.DescribeLevel(core.DebugLevel), fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	l.emit(core.DescribeLevel(core.InfoLevel), fmt.Sprintf(format, args...), nil)
}

// Successf logs a success message with formatting
func (l *Logger) Successf(format string, args ...interface{}) {
	l.emit(core.DescribeLevel(core.SuccessLevel), fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.emit(core.DescribeLevel(core.WarningLevel), fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.emit(core.DescribeLevel(core.ErrorLevel), fmt.Sprintf(format, args...), nil)
}

// Criticalf logs a critical message with formatting
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.emit(core.DescribeLevel(core.CriticalLevel), fmt.Sprintf(format, args...), nil)
}

// Sync flushes the registry's sinks.
func (l *Logger) Sync() error {
	return l.reg.Sync()
}

// emit is the single funnel into the engine. The severity descriptor is
// prepended as a carrier field and the entry goes out at the fixed engine
// level. Caller-skip is tuned for exactly one public method between the
// user and this call; every exported method and EmitFunc closure keeps
// that depth.
func (l *Logger) emit(li core.LevelInfo, msg string, fields []zap.Field) {
	zl := l.reg.current()
	merged := make([]zap.Field, 0, 1+len(l.fields)+len(fields))
	merged = append(merged, sink.CarryLevel(li))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)
	zl.Log(engineLevel, msg, merged...)
}
