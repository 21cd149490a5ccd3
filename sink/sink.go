package sink

import (
	"io"
	"os"
	"time"

	"github.com/philipp01105/log11/colors"
	"github.com/philipp01105/log11/core"
	"github.com/philipp01105/log11/formatter"
)

// Format selects the serialization mode of a sink.
type Format int

const (
	// Text renders human-readable lines through the text formatter.
	Text Format = iota
	// JSON renders the structured record shape, one object per line.
	JSON
)

// Options are passthrough knobs for the delivery layer.
type Options struct {
	// Sync disables queued delivery; records are written inline under a
	// lock. Mostly useful in tests and short-lived programs.
	Sync bool
	// BufferSize is the size of the async queue (default: 1000)
	BufferSize int
	// OverflowPolicy defines behavior when the queue is full (default: Block)
	OverflowPolicy OverflowPolicy
	// BlockTimeout is the timeout for the Block policy (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout is the timeout for draining the queue on Close (default: 5s)
	DrainTimeout time.Duration
	// CloseWriter closes the destination on teardown when it implements
	// io.Closer. Leave false for shared writers like os.Stdout.
	CloseWriter bool
}

// Config describes one named output destination.
type Config struct {
	// Name is the unique registry key.
	Name string
	// Writer is the destination (default: os.Stdout).
	Writer io.Writer
	// Format selects text or structured serialization.
	Format Format
	// Colored enables ANSI styling for text sinks.
	Colored bool
	// Level is the severity threshold (default: core.InfoLevel).
	Level core.Level
	// Text overrides the field selection for text sinks; nil means all
	// components enabled.
	Text *formatter.FormatConfig
	// Options tune the delivery layer.
	Options Options
}

// Meta is the level-metadata snapshot sinks render with. The registry
// rebuilds every sink whenever this changes, so a sink's view is always
// consistent for its lifetime.
type Meta struct {
	Names      map[core.Level]string
	Colors     map[core.Level]colors.Color
	LabelWidth int
}

// Name resolves a level's display name, falling back to the built-in name.
func (m Meta) Name(l core.Level) string {
	if n, ok := m.Names[l]; ok {
		return n
	}
	return l.String()
}

// Color resolves a level's display color.
func (m Meta) Color(l core.Level) colors.Color {
	return m.Colors[l]
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Level == 0 {
		cfg.Level = core.InfoLevel
	}
	if cfg.Options.BufferSize <= 0 {
		cfg.Options.BufferSize = 1000
	}
	if cfg.Options.BlockTimeout == 0 {
		cfg.Options.BlockTimeout = 100 * time.Millisecond
	}
	if cfg.Options.DrainTimeout == 0 {
		cfg.Options.DrainTimeout = 5 * time.Second
	}
}

// Sink is one live output: a threshold gate, a formatter and a writer.
type Sink struct {
	name  string
	level core.Level
	f     formatter.Formatter
	w     Writer
	stats *Stats
}

// New constructs a sink from its configuration and the registry's current
// level metadata.
func New(cfg Config, meta Meta) *Sink {
	applyDefaults(&cfg)

	var f formatter.Formatter
	if cfg.Format == JSON {
		f = formatter.NewJSONFormatter()
	} else {
		textCfg := formatter.DefaultFormatConfig()
		if cfg.Text != nil {
			textCfg = *cfg.Text
		}
		fields := formatter.Fields{
			Style:      colors.Style{Enabled: cfg.Colored},
			LabelWidth: meta.LabelWidth,
		}
		f = formatter.NewTextFormatter(textCfg, fields)
	}

	stats := &Stats{}
	var w Writer
	if cfg.Options.Sync {
		w = newSyncWriter(cfg.Writer, stats, cfg.Options.CloseWriter)
	} else {
		w = newAsyncWriter(cfg.Writer, cfg.Options, stats)
	}

	return &Sink{
		name:  cfg.Name,
		level: cfg.Level,
		f:     f,
		w:     w,
		stats: stats,
	}
}

// Name returns the registry key this sink was registered under.
func (s *Sink) Name() string { return s.name }

// Enabled reports whether records at the given level reach this sink.
func (s *Sink) Enabled(l core.Level) bool { return l >= s.level }

// Stats returns the sink's delivery counters.
func (s *Sink) Stats() *Stats { return s.stats }

func (s *Sink) emit(rec *core.Record) error {
	if !s.Enabled(rec.Level) {
		return nil
	}
	data, err := s.f.Format(rec)
	if err != nil {
		return err
	}
	_, err = s.w.Write(data)
	return err
}

// Sync flushes queued records through to the destination.
func (s *Sink) Sync() error { return s.w.Sync() }

// Close tears down the delivery path.
func (s *Sink) Close() error { return s.w.Close() }
