package analysis

import (
	"sync"

	"github.com/perf-bench/analyzer/types"
)

// History is a caller-owned, append-only record of analyzed suites. It
// replaces implicit process-wide accumulation so lifetime and memory growth
// stay under the caller's control. A limit of 0 means unbounded; otherwise
// the oldest suites are evicted once the limit is reached.
//
// History is safe for concurrent use; Analyze itself is not, so callers
// still serialize analyzer access.
type History struct {
	mu     sync.RWMutex
	limit  int
	suites []*types.BenchmarkSuite
}

// NewHistory creates a run history holding at most limit suites (0 =
// unbounded).
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Append records an analyzed suite as the most recent run.
func (h *History) Append(suite *types.BenchmarkSuite) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.suites = append(h.suites, suite)
	if h.limit > 0 && len(h.suites) > h.limit {
		h.suites = h.suites[len(h.suites)-h.limit:]
	}
}

// Last returns the most recently appended suite, or nil when empty.
func (h *History) Last() *types.BenchmarkSuite {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.suites) == 0 {
		return nil
	}
	return h.suites[len(h.suites)-1]
}

// Len reports the number of retained suites.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.suites)
}

// Snapshot returns the retained suites oldest-first. The slice is a copy;
// the suites themselves are shared and treated as immutable.
func (h *History) Snapshot() []*types.BenchmarkSuite {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]*types.BenchmarkSuite, len(h.suites))
	copy(out, h.suites)
	return out
}
