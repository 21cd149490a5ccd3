package sink

import (
	"io"
	"sync"
	"time"
)

// Writer delivers formatted bytes to a destination. Close tears down the
// delivery path; whether it also closes the destination is decided by the
// CloseWriter option.
type Writer interface {
	io.Writer
	Sync() error
	Close() error
}

type syncable interface {
	Sync() error
}

// syncWriter writes inline under a mutex. Used when Options.Sync is set.
type syncWriter struct {
	mu          sync.Mutex
	w           io.Writer
	stats       *Stats
	closeWriter bool
}

func newSyncWriter(w io.Writer, stats *Stats, closeWriter bool) *syncWriter {
	return &syncWriter{w: w, stats: stats, closeWriter: closeWriter}
}

func (sw *syncWriter) Write(p []byte) (int, error) {
	sw.mu.Lock()
	n, err := sw.w.Write(p)
	sw.mu.Unlock()
	if err == nil {
		sw.stats.processed.Add(1)
	}
	return n, err
}

func (sw *syncWriter) Sync() error {
	if s, ok := sw.w.(syncable); ok {
		return s.Sync()
	}
	return nil
}

func (sw *syncWriter) Close() error {
	if sw.closeWriter {
		if c, ok := sw.w.(io.Closer); ok {
			return c.Close()
		}
	}
	return nil
}

// asyncWriter decouples callers from destination I/O: producers enqueue
// formatted lines on a bounded channel and a dedicated consumer goroutine
// performs the writes. Queue overflow follows the configured policy.
type asyncWriter struct {
	w            io.Writer
	mu           sync.Mutex // serializes direct writes with the consumer
	queue        chan []byte
	flushes      chan chan struct{}
	closed       chan struct{}
	closeOnce    sync.Once
	wg           sync.WaitGroup
	policy       OverflowPolicy
	blockTimeout time.Duration
	drainTimeout time.Duration
	stats        *Stats
	closeWriter  bool
}

func newAsyncWriter(w io.Writer, opts Options, stats *Stats) *asyncWriter {
	aw := &asyncWriter{
		w:            w,
		queue:        make(chan []byte, opts.BufferSize),
		flushes:      make(chan chan struct{}),
		closed:       make(chan struct{}),
		policy:       opts.OverflowPolicy,
		blockTimeout: opts.BlockTimeout,
		drainTimeout: opts.DrainTimeout,
		stats:        stats,
		closeWriter:  opts.CloseWriter,
	}
	aw.wg.Add(1)
	go aw.process()
	return aw
}

// Write enqueues p, which must be owned by the caller-side formatter; the
// slice is not copied. Returns len(p) even when the record is dropped so
// overflow never surfaces as a caller error.
func (aw *asyncWriter) Write(p []byte) (int, error) {
	switch aw.policy {
	case Block:
		select {
		case aw.queue <- p:
			return len(p), nil
		case <-aw.closed:
			return aw.writeDirect(p)
		default:
		}

		// Queue full: wait up to blockTimeout, then write inline so the
		// record is not lost.
		timer := time.NewTimer(aw.blockTimeout)
		defer timer.Stop()
		select {
		case aw.queue <- p:
			return len(p), nil
		case <-timer.C:
			aw.stats.blocked.Add(1)
			return aw.writeDirect(p)
		case <-aw.closed:
			return aw.writeDirect(p)
		}

	case DropOldest:
		select {
		case aw.queue <- p:
			return len(p), nil
		default:
		}
		select {
		case <-aw.queue: // evict oldest
			aw.stats.dropped.Add(1)
		default:
		}
		select {
		case aw.queue <- p:
			return len(p), nil
		default:
			aw.stats.dropped.Add(1)
			return len(p), nil
		}

	default: // DropNewest
		select {
		case aw.queue <- p:
			return len(p), nil
		default:
			aw.stats.dropped.Add(1)
			return len(p), nil
		}
	}
}

func (aw *asyncWriter) writeDirect(p []byte) (int, error) {
	aw.mu.Lock()
	n, err := aw.w.Write(p)
	aw.mu.Unlock()
	if err == nil {
		aw.stats.processed.Add(1)
	}
	return n, err
}

// process is the single consumer goroutine.
func (aw *asyncWriter) process() {
	defer aw.wg.Done()

	for {
		select {
		case p := <-aw.queue:
			aw.writeDirect(p)
			aw.batchDrain()
		case ack := <-aw.flushes:
			aw.batchDrain()
			close(ack)
		case <-aw.closed:
			// Drain remaining entries with timeout
			deadline := time.After(aw.drainTimeout)
			for {
				select {
				case p := <-aw.queue:
					aw.writeDirect(p)
				case <-deadline:
					return
				default:
					return
				}
			}
		}
	}
}

// batchDrain processes queued entries without blocking.
func (aw *asyncWriter) batchDrain() {
	for {
		select {
		case p := <-aw.queue:
			aw.writeDirect(p)
		default:
			return
		}
	}
}

// Sync waits until everything queued before the call has been written,
// then syncs the destination if it supports it.
func (aw *asyncWriter) Sync() error {
	select {
	case <-aw.closed:
		return nil
	default:
	}

	ack := make(chan struct{})
	select {
	case aw.flushes <- ack:
		select {
		case <-ack:
		case <-aw.closed:
		}
	case <-aw.closed:
		return nil
	}

	if s, ok := aw.w.(syncable); ok {
		return s.Sync()
	}
	return nil
}

// Close stops the consumer after draining the queue with a timeout.
func (aw *asyncWriter) Close() error {
	aw.closeOnce.Do(func() {
		close(aw.closed)
	})
	aw.wg.Wait()

	if aw.closeWriter {
		if c, ok := aw.w.(io.Closer); ok {
			return c.Close()
		}
	}
	return nil
}
