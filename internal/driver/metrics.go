package driver

import (
	"fmt"
	"sync/atomic"
)

// Metrics counts what a run did. Fields are updated by the workers and
// read once the run returns.
type Metrics struct {
	Workers     int
	Files       atomic.Int64
	Parsed      atomic.Int64
	Failed      atomic.Int64
	CacheHits   atomic.Int64
	CacheMisses atomic.Int64
	CacheErrors atomic.Int64
}

func (m *Metrics) String() string {
	return fmt.Sprintf("workers=%d files=%d parsed=%d failed=%d cache_hits=%d cache_misses=%d",
		m.Workers, m.Files.Load(), m.Parsed.Load(), m.Failed.Load(), m.CacheHits.Load(), m.CacheMisses.Load())
}
