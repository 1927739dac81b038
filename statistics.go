package ringbuffer

import (
	"sync/atomic"
	"time"
)

// Statistics counts buffer operations. All methods are safe for concurrent use.
type Statistics struct {
	puts       atomic.Int64
	pulls      atomic.Int64
	emptyPulls atomic.Int64
	overwrites atomic.Int64
	resets     atomic.Int64
	maxSize    atomic.Int64

	startTime time.Time
}

func newStatistics() *Statistics {
	return &Statistics{startTime: time.Now()}
}

func (s *Statistics) recordPut(size int, overwrote bool) {
	s.puts.Add(1)
	if overwrote {
		s.overwrites.Add(1)
	}
	s.observeSize(int64(size))
}

func (s *Statistics) recordPull(ok bool) {
	if ok {
		s.pulls.Add(1)
		return
	}
	s.emptyPulls.Add(1)
}

func (s *Statistics) recordReset() {
	s.resets.Add(1)
}

func (s *Statistics) observeSize(size int64) {
	for {
		cur := s.maxSize.Load()
		if size <= cur || s.maxSize.CompareAndSwap(cur, size) {
			return
		}
	}
}

// Puts returns the number of items written.
func (s *Statistics) Puts() int64 { return s.puts.Load() }

// Pulls returns the number of items handed to readers.
func (s *Statistics) Pulls() int64 { return s.pulls.Load() }

// EmptyPulls returns the number of reads that found the buffer empty.
func (s *Statistics) EmptyPulls() int64 { return s.emptyPulls.Load() }

// Overwrites returns the number of items discarded because the buffer was full.
func (s *Statistics) Overwrites() int64 { return s.overwrites.Load() }

// Resets returns the number of Reset and Close calls.
func (s *Statistics) Resets() int64 { return s.resets.Load() }

// MaxSize returns the largest logical size the buffer has reached.
func (s *Statistics) MaxSize() int64 { return s.maxSize.Load() }

// OverwriteRate returns the fraction of puts that discarded an older item (0.0 to 1.0).
func (s *Statistics) OverwriteRate() float64 {
	puts := s.Puts()
	if puts == 0 {
		return 0.0
	}
	return float64(s.Overwrites()) / float64(puts)
}

// Uptime returns how long ago the buffer was created.
func (s *Statistics) Uptime() time.Duration {
	return time.Since(s.startTime)
}

// StatsSummary is a point-in-time copy of Statistics.
type StatsSummary struct {
	Puts          int64         `json:"puts"`
	Pulls         int64         `json:"pulls"`
	EmptyPulls    int64         `json:"empty_pulls"`
	Overwrites    int64         `json:"overwrites"`
	Resets        int64         `json:"resets"`
	MaxSize       int64         `json:"max_size"`
	OverwriteRate float64       `json:"overwrite_rate"`
	Uptime        time.Duration `json:"uptime"`
}

// Summary returns a snapshot of all counters. Counters are read individually,
// so the snapshot is not atomic with respect to concurrent operations.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		Puts:          s.Puts(),
		Pulls:         s.Pulls(),
		EmptyPulls:    s.EmptyPulls(),
		Overwrites:    s.Overwrites(),
		Resets:        s.Resets(),
		MaxSize:       s.MaxSize(),
		OverwriteRate: s.OverwriteRate(),
		Uptime:        s.Uptime(),
	}
}
