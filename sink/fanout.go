package sink

import (
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/log11/core"
)

// Fanout is the zapcore.Core the registry mounts into the engine. It
// builds one Record per log event — normalizing every attached field
// exactly once — and hands it to each sink, which applies its own
// threshold and serialization.
type Fanout struct {
	sinks []*Sink
	meta  Meta
	extra []core.ExtraField // pre-bound fields from With, already normalized
}

var _ zapcore.Core = (*Fanout)(nil)

// NewFanout creates the fan-out core over the given sinks.
func NewFanout(sinks []*Sink, meta Meta) *Fanout {
	return &Fanout{sinks: sinks, meta: meta}
}

// carrierKey marks the skip field that carries the severity descriptor
// through the engine. Encoders ignore SkipType fields; the fan-out
// consumes the descriptor and strips the field before normalization.
const carrierKey = "log11:level"

// CarryLevel wraps a severity descriptor into a field the engine passes
// through untouched. The emission front-end attaches one per event and
// emits at a fixed zapcore level: facade ranks must never be encoded as
// zapcore.Level values, because zapcore reserves 3..5 (DPanic, Panic,
// Fatal) for terminal behavior and the rank space overlaps it.
func CarryLevel(li core.LevelInfo) zapcore.Field {
	return zapcore.Field{Key: carrierKey, Type: zapcore.SkipType, Interface: li}
}

// Enabled reports whether any sink is mounted. Entries arrive at a fixed
// engine level with the real severity in the carrier field, so per-rank
// thresholds are applied sink-side in Write.
func (f *Fanout) Enabled(zapcore.Level) bool {
	return len(f.sinks) > 0
}

// With returns a clone carrying additional pre-normalized fields.
func (f *Fanout) With(fields []zapcore.Field) zapcore.Core {
	clone := &Fanout{sinks: f.sinks, meta: f.meta}
	clone.extra = make([]core.ExtraField, 0, len(f.extra)+len(fields))
	clone.extra = append(clone.extra, f.extra...)
	clone.extra = append(clone.extra, NormalizeFields(fields)...)
	return clone
}

func (f *Fanout) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if f.Enabled(ent.Level) {
		return ce.AddCore(ent, f)
	}
	return ce
}

// Write renders the event once per sink. Sink errors are aggregated, not
// short-circuited, so one failing destination cannot starve the others.
func (f *Fanout) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	rec := f.record(ent, fields)
	var err error
	for _, s := range f.sinks {
		err = multierr.Append(err, s.emit(rec))
	}
	return err
}

// Sync flushes every sink.
func (f *Fanout) Sync() error {
	var err error
	for _, s := range f.sinks {
		err = multierr.Append(err, s.Sync())
	}
	return err
}

// Close tears down every sink's delivery path.
func (f *Fanout) Close() error {
	var err error
	for _, s := range f.sinks {
		err = multierr.Append(err, s.Close())
	}
	return err
}

// Sinks returns the live sinks in registration order.
func (f *Fanout) Sinks() []*Sink {
	return f.sinks
}

func (f *Fanout) record(ent zapcore.Entry, fields []zapcore.Field) *core.Record {
	li, fields := takeCarrier(fields)
	if li.Name == "" {
		// No carrier: the entry came straight from the engine, so its
		// level is the severity rank.
		lvl := core.Level(ent.Level)
		li = core.LevelInfo{Name: f.meta.Name(lvl), Level: lvl, Color: f.meta.Color(lvl)}
	}
	rec := &core.Record{
		Time:      ent.Time,
		Level:     li.Level,
		LevelName: li.Name,
		Color:     li.Color,
		Message:   ent.Message,
	}
	if ent.Caller.Defined {
		rec.File = ent.Caller.File
		rec.Line = ent.Caller.Line
		rec.Function = ent.Caller.Function
	}
	if n := len(f.extra) + len(fields); n > 0 {
		rec.Extra = make([]core.ExtraField, 0, n)
		rec.Extra = append(rec.Extra, f.extra...)
		rec.Extra = append(rec.Extra, NormalizeFields(fields)...)
	}
	return rec
}

// takeCarrier extracts the severity descriptor attached by the emission
// front-end and returns the remaining fields. Without a carrier it
// returns a zero descriptor and the fields unchanged.
func takeCarrier(fields []zapcore.Field) (core.LevelInfo, []zapcore.Field) {
	for i, fld := range fields {
		if fld.Type != zapcore.SkipType || fld.Key != carrierKey {
			continue
		}
		if li, ok := fld.Interface.(core.LevelInfo); ok {
			rest := make([]zapcore.Field, 0, len(fields)-1)
			rest = append(rest, fields[:i]...)
			rest = append(rest, fields[i+1:]...)
			return li, rest
		}
	}
	return core.LevelInfo{}, fields
}

// NormalizeFields converts attached zap fields into normalized text pairs,
// preserving attachment order. Skip fields never render. This is the
// single normalization point: formatters and structured output downstream
// only ever see bounded strings.
func NormalizeFields(fields []zapcore.Field) []core.ExtraField {
	if len(fields) == 0 {
		return nil
	}
	out := make([]core.ExtraField, 0, len(fields))
	for _, fld := range fields {
		if fld.Type == zapcore.SkipType {
			continue
		}
		enc := zapcore.NewMapObjectEncoder()
		fld.AddTo(enc)
		out = append(out, core.ExtraField{
			Key:   fld.Key,
			Value: core.ToString(enc.Fields[fld.Key], core.DefaultMaxLen),
		})
	}
	return out
}
