package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("parse")
	tm.End(idx, "ok")
	tm.End(42, "ignored")
	tm.Record("extract", 3*time.Millisecond, "")

	rep := tm.Report()
	if len(rep.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(rep.Phases))
	}
	if rep.Phases[0].Name != "parse" || rep.Phases[0].Note != "ok" {
		t.Fatalf("unexpected first phase: %+v", rep.Phases[0])
	}
	if rep.Phases[1].DurationMS != 3 {
		t.Fatalf("expected 3ms, got %v", rep.Phases[1].DurationMS)
	}
	if rep.TotalMS < 3 {
		t.Fatalf("total %v below recorded phase", rep.TotalMS)
	}
}

func TestTimerSummary(t *testing.T) {
	if got := NewTimer().Report(); got.Phases != nil || got.TotalMS != 0 {
		t.Fatalf("empty timer reported %+v", got)
	}
	tm := NewTimer()
	tm.Record("parse", time.Millisecond, "cached")
	s := tm.Summary()
	for _, want := range []string{"timings:", "parse", "// cached", "total"} {
		if !strings.Contains(s, want) {
			t.Fatalf("summary missing %q:\n%s", want, s)
		}
	}
}
