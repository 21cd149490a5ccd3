// Package core defines the data model shared by every other package:
// severity levels, the immutable Record snapshot, and the ToString value
// normalizer.
//
// ToString carries a hard contract: it never panics, for any input,
// including values whose String method panics. Exceptional paths degrade
// to sentinel tokens (_NULL_, _EMPTY_, _NAN_, _INFINITY_, _-INFINITY_) or
// to best-effort text bounded by maxLen. Logging must never crash the
// host application, and this function is where that guarantee bottoms out.
package core
