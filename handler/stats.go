package handler

import (
	"sync/atomic"

	"github.com/magillus/flutter-fimber/core"
)

// Stats tracks handler statistics
type Stats struct {
	// Separate atomic counters per level
	processed [core.NumLevels]atomic.Uint64
	// failed counts native calls that returned an error
	failed atomic.Uint64
	// discarded counts entries the host logger had disabled
	discarded atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter for a level
func (s *Stats) IncrementProcessed(level core.Level) {
	if level < core.VerboseLevel || int(level) >= core.NumLevels {
		level = core.VerboseLevel
	}
	s.processed[level].Add(1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	s.failed.Add(1)
}

// IncrementDiscarded atomically increments the discarded counter
func (s *Stats) IncrementDiscarded() {
	s.discarded.Add(1)
}

// Record counts the outcome of one native call
func (s *Stats) Record(level core.Level, err error) {
	if err != nil {
		s.IncrementFailed()
		return
	}
	s.IncrementProcessed(level)
}

// GetProcessed returns the processed count for a level
func (s *Stats) GetProcessed(level core.Level) uint64 {
	if level < core.VerboseLevel || int(level) >= core.NumLevels {
		return 0
	}
	return s.processed[level].Load()
}

// GetTotalProcessed returns the processed count across all levels
func (s *Stats) GetTotalProcessed() uint64 {
	var total uint64
	for i := range s.processed {
		total += s.processed[i].Load()
	}
	return total
}

// GetFailed returns the failed count
func (s *Stats) GetFailed() uint64 {
	return s.failed.Load()
}

// GetDiscarded returns the discarded count
func (s *Stats) GetDiscarded() uint64 {
	return s.discarded.Load()
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.processed {
		s.processed[i].Store(0)
	}
	s.failed.Store(0)
	s.discarded.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Processed      map[core.Level]uint64
	ProcessedTotal uint64
	Failed         uint64
	Discarded      uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Processed: make(map[core.Level]uint64, core.NumLevels),
		Failed:    s.GetFailed(),
		Discarded: s.GetDiscarded(),
	}
	for l := core.VerboseLevel; l <= core.FatalLevel; l++ {
		n := s.GetProcessed(l)
		snap.Processed[l] = n
		snap.ProcessedTotal += n
	}
	return snap
}
