// Package formatter defines how records are serialized into bytes.
//
// The Formatter interface returns an owned []byte so sink writers can
// enqueue the result without copying. Both built-in formatters use a
// pooled bytes.Buffer internally and Go's Append-style functions
// (time.AppendFormat, strconv) to avoid per-call allocations. Buffers
// larger than 64 KiB are not returned to the pool to prevent a single
// large log line from permanently inflating memory usage.
//
// TextFormatter renders human-readable lines from an ordered, configurable
// subset of field renderers. JSONFormatter renders the structured record
// shape with pre-normalized extra values.
package formatter
