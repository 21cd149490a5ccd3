package sink

import "sync/atomic"

// OverflowPolicy defines how a full async queue is handled. The zero value
// is Block, matching the queued-delivery default.
type OverflowPolicy int

const (
	// Block blocks the caller until space is available, falling back to a
	// direct write after BlockTimeout.
	Block OverflowPolicy = iota
	// DropNewest drops the incoming record when the queue is full.
	DropNewest
	// DropOldest evicts the oldest queued record to make room.
	DropOldest
)

// String returns the string representation of the policy
func (p OverflowPolicy) String() string {
	switch p {
	case Block:
		return "Block"
	case DropNewest:
		return "DropNewest"
	case DropOldest:
		return "DropOldest"
	default:
		return "Unknown"
	}
}

// Stats tracks per-sink delivery counters.
type Stats struct {
	dropped   atomic.Uint64
	blocked   atomic.Uint64
	processed atomic.Uint64
}

// Dropped returns the number of records lost to queue overflow.
func (s *Stats) Dropped() uint64 { return s.dropped.Load() }

// Blocked returns how many writes fell back to the direct path after the
// block timeout expired.
func (s *Stats) Blocked() uint64 { return s.blocked.Load() }

// Processed returns the number of records written to the destination.
func (s *Stats) Processed() uint64 { return s.processed.Load() }
