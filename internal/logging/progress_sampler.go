package logging

// ProgressSampler suppresses per-item progress logs, letting through one line
// every interval items plus the final item of a run.
type ProgressSampler struct {
	interval int
	last     int
}

// NewProgressSampler constructs a sampler that emits every interval processed
// items (default 100).
func NewProgressSampler(interval int) *ProgressSampler {
	if interval <= 0 {
		interval = 100
	}
	return &ProgressSampler{interval: interval, last: -1}
}

// ShouldLog reports whether progress at processed/total should be logged.
// processed is 1-based; a given count is never reported twice.
func (s *ProgressSampler) ShouldLog(processed, total int) bool {
	if s == nil {
		return true
	}
	if processed <= s.last {
		return false
	}
	emit := processed%s.interval == 0 || (total > 0 && processed >= total)
	if emit {
		s.last = processed
	}
	return emit
}

// Interval returns the configured cadence.
func (s *ProgressSampler) Interval() int {
	if s == nil {
		return 0
	}
	return s.interval
}

// Reset clears the sampler state (e.g. when a new run starts).
func (s *ProgressSampler) Reset() {
	if s == nil {
		return
	}
	s.last = -1
}
