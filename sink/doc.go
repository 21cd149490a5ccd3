// Package sink implements the engine-facing output layer: per-sink
// configuration, queued delivery, and the zapcore.Core fan-out the
// registry mounts into the zap logger.
//
// Each sink owns a formatter and a writer. The default writer is
// asynchronous: a bounded queue feeds a dedicated consumer goroutine, so
// caller latency is decoupled from destination I/O. Overflow behavior is
// per-sink configurable (Block with timeout, DropNewest, DropOldest), and
// Close drains the queue with a timeout before stopping the consumer.
//
// Fanout builds one core.Record per log event and fans it out to every
// sink. Attached-field normalization happens there exactly once per
// event, never per sink.
package sink
