// Package logger is the configuration surface of log11: the sink
// registry, the rebuild protocol, custom level registration, and the
// Logger front-end over the zap engine.
//
// The Registry is an explicit, injectable object; the package-level
// Default registry exists only for convenience. Every registry mutation
// (AddOutput, Clear, SetGlobalLevel, AddLevel) performs a full rebuild:
// the previous engine cores are torn down and fresh ones constructed from
// the registry's current state, so the live sink set never drifts from
// the configuration.
//
// Text output line shape, all components enabled:
//
//	<date>  <time>  <level>  <function>  <message>  <path:line>  <k=v | k=v>
//
// The function column renders before the message. Custom levels are
// emitted through the typed function returned by AddLevel rather than by
// mutating a shared logger.
package logger
