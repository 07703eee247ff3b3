package diag

import (
	"sync"

	"clangview/internal/source"
)

// Reporter receives finished diagnostics.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter adds to a Bag. It is safe for concurrent use.
type BagReporter struct {
	mu  sync.Mutex
	bag *Bag
}

func NewBagReporter(b *Bag) *BagReporter { return &BagReporter{bag: b} }

func (r *BagReporter) Report(d Diagnostic) {
	r.mu.Lock()
	r.bag.Add(d)
	r.mu.Unlock()
}

type findingKey struct {
	code Code
	sev  Severity
	span source.Span
	msg  string
}

// DedupReporter forwards the first of each set of diagnostics that agree
// on code, severity, primary span and message. A header included by
// several main files yields one finding per unit otherwise.
type DedupReporter struct {
	next       Reporter
	seen       map[findingKey]struct{}
	suppressed int
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{next: next, seen: make(map[findingKey]struct{})}
}

func (r *DedupReporter) Report(d Diagnostic) {
	key := findingKey{code: d.Code, sev: d.Severity, span: d.Primary, msg: d.Message}
	if _, dup := r.seen[key]; dup {
		r.suppressed++
		return
	}
	r.seen[key] = struct{}{}
	r.next.Report(d)
}

// Suppressed counts the repeats that were not forwarded.
func (r *DedupReporter) Suppressed() int { return r.suppressed }
