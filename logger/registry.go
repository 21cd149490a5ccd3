package logger

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/philipp01105/log11/colors"
	"github.com/philipp01105/log11/core"
	"github.com/philipp01105/log11/formatter"
	"github.com/philipp01105/log11/sink"
)

// ErrDuplicateOutput is returned when an output name is already registered.
var ErrDuplicateOutput = errors.New("output already exists")

// Registry owns the named sink set, the custom level table, and the live
// zap logger built from them. Every mutation rebuilds the engine's sink
// set from scratch, so the live cores always equal the registry contents.
//
// A Registry is safe for concurrent use, but a rebuild is not atomic with
// respect to concurrent emission: a record logged mid-rebuild may be
// dropped. This matches the source behavior and is accepted.
type Registry struct {
	mu      sync.Mutex
	order   []string
	outputs map[string]sink.Config
	levels  map[string]core.LevelInfo // keyed by uppercase name
	ranks   map[core.Level]core.LevelInfo
	width   int
	fan     *sink.Fanout
	zl      *zap.Logger
}

// New creates an empty registry seeded with the built-in level set.
func New() *Registry {
	r := &Registry{
		outputs: make(map[string]sink.Config),
		levels:  make(map[string]core.LevelInfo),
		ranks:   make(map[core.Level]core.LevelInfo),
	}
	for _, li := range core.BuiltinLevels() {
		r.levels[li.Name] = li
		r.ranks[li.Level] = li
	}
	r.width = r.labelWidthLocked()
	return r
}

// AddOutput registers a named sink and rebuilds the engine. Registering a
// name that already exists fails with ErrDuplicateOutput and leaves the
// registry unchanged.
func (r *Registry) AddOutput(cfg sink.Config) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cfg.Name == "" {
		return errors.New("output name must not be empty")
	}
	if _, ok := r.outputs[cfg.Name]; ok {
		return fmt.Errorf("output %q: %w", cfg.Name, ErrDuplicateOutput)
	}

	r.outputs[cfg.Name] = cfg
	r.order = append(r.order, cfg.Name)
	return r.rebuildLocked()
}

// Clear empties the registry and tears down every live sink.
func (r *Registry) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.outputs = make(map[string]sink.Config)
	r.order = r.order[:0]
	return r.rebuildLocked()
}

// SetGlobalLevel updates every registered sink's threshold, then rebuilds.
func (r *Registry) SetGlobalLevel(lvl core.Level) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for name, cfg := range r.outputs {
		cfg.Level = lvl
		r.outputs[name] = cfg
	}
	return r.rebuildLocked()
}

// AddLevel registers a custom severity level and returns an emit function
// bound to it. Registration is idempotent by name: an existing name keeps
// its original rank and color, and the emit function targets that. The
// max-label-width derived value is recomputed and every sink rebuilt so
// text columns account for the new name.
//
// The emit function reports the caller's call site, so location fields
// reflect user code rather than this package.
func (r *Registry) AddLevel(name string, rank int, color colors.Color) (EmitFunc, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	if key == "" {
		return nil, errors.New("level name must not be empty")
	}

	r.mu.Lock()
	li, ok := r.levels[key]
	var err error
	if !ok {
		li = core.LevelInfo{Name: key, Level: core.Level(rank), Color: color}
		r.levels[key] = li
		// First registration wins the rank slot; a built-in rank keeps
		// its built-in name when looked up by rank alone.
		if _, taken := r.ranks[li.Level]; !taken {
			r.ranks[li.Level] = li
		}
		r.width = r.labelWidthLocked()
		err = r.rebuildLocked()
	}
	r.mu.Unlock()

	l := &Logger{reg: r}
	return func(msg string, fields ...zap.Field) {
		l.emit(li, msg, fields)
	}, err
}

// describe resolves a rank to its display descriptor. Built-in ranks and
// first-registered custom ranks resolve from the level table; unknown
// ranks get a bare LEVEL(n) descriptor.
func (r *Registry) describe(lvl core.Level) core.LevelInfo {
	r.mu.Lock()
	li, ok := r.ranks[lvl]
	r.mu.Unlock()
	if ok {
		return li
	}
	return core.DescribeLevel(lvl)
}

// LevelByName looks up a registered level by its (case-insensitive) name.
func (r *Registry) LevelByName(name string) (core.LevelInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	li, ok := r.levels[strings.ToUpper(name)]
	return li, ok
}

// MaxLabelWidth returns the display width text sinks pad severity labels to.
func (r *Registry) MaxLabelWidth() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width
}

// Outputs returns the registered sink names in insertion order.
func (r *Registry) Outputs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

// Logger returns the emission front-end. An empty registry is lazily
// given the default stdout setup first.
func (r *Registry) Logger() *Logger {
	r.mu.Lock()
	if len(r.order) == 0 {
		r.defaultSetupLocked()
	}
	r.mu.Unlock()
	return &Logger{reg: r}
}

// DefaultSetup clears the registry and installs the default sink: colored
// text on stdout at INFO, date column off.
func (r *Registry) DefaultSetup() *Logger {
	r.mu.Lock()
	r.defaultSetupLocked()
	r.mu.Unlock()
	return &Logger{reg: r}
}

// Sync flushes every sink's queue through to its destination.
func (r *Registry) Sync() error {
	r.mu.Lock()
	fan := r.fan
	r.mu.Unlock()
	if fan == nil {
		return nil
	}
	return fan.Sync()
}

func (r *Registry) defaultSetupLocked() {
	r.outputs = make(map[string]sink.Config)
	r.order = r.order[:0]

	text := formatter.DefaultFormatConfig()
	text.Date = false

	cfg := sink.Config{
		Name:    "default",
		Writer:  os.Stdout,
		Format:  sink.Text,
		Colored: true,
		Level:   core.InfoLevel,
		Text:    &text,
	}
	r.outputs[cfg.Name] = cfg
	r.order = append(r.order, cfg.Name)
	r.rebuildLocked()
}

// rebuildLocked tears down the previous sink set and constructs a fresh
// one from the registry contents, in insertion order. Teardown errors are
// returned but do not prevent the rebuild.
func (r *Registry) rebuildLocked() error {
	var err error
	if r.fan != nil {
		err = r.fan.Close()
	}

	meta := r.metaLocked()
	sinks := make([]*sink.Sink, 0, len(r.order))
	for _, name := range r.order {
		sinks = append(sinks, sink.New(r.outputs[name], meta))
	}

	r.fan = sink.NewFanout(sinks, meta)
	r.zl = zap.New(r.fan, zap.AddCaller(), zap.AddCallerSkip(2))
	return err
}

func (r *Registry) metaLocked() sink.Meta {
	names := make(map[core.Level]string, len(r.ranks))
	levelColors := make(map[core.Level]colors.Color, len(r.ranks))
	for lvl, li := range r.ranks {
		names[lvl] = li.Name
		levelColors[lvl] = li.Color
	}
	return sink.Meta{
		Names:      names,
		Colors:     levelColors,
		LabelWidth: r.width,
	}
}

func (r *Registry) labelWidthLocked() int {
	width := 0
	for name := range r.levels {
		if len(name) > width {
			width = len(name)
		}
	}
	return width
}

// current returns the live zap logger, building an empty sink set on
// first use so emission before any configuration is a quiet no-op.
func (r *Registry) current() *zap.Logger {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.zl == nil {
		r.rebuildLocked()
	}
	return r.zl
}
