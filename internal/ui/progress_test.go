package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"

	"clangview/internal/driver"
)

func TestProgressModelEvents(t *testing.T) {
	m := NewProgressModel("diag", []string{"a.c", "b.c"}, nil).(*progressModel)
	if got := m.percent(); got != 0 {
		t.Fatalf("initial percent = %v", got)
	}
	m.applyEvent(driver.Event{File: "a.c", Stage: driver.StageParse, Status: driver.StatusWorking})
	if m.items[0].status != "parsing" {
		t.Fatalf("status = %q", m.items[0].status)
	}
	m.applyEvent(driver.Event{File: "a.c", Stage: driver.StageAnalyze, Status: driver.StatusDone, Elapsed: 3 * time.Millisecond})
	m.applyEvent(driver.Event{File: "b.c", Stage: driver.StageAnalyze, Status: driver.StatusError, Err: errors.New("boom")})
	m.applyEvent(driver.Event{File: "unknown.c", Stage: driver.StageParse, Status: driver.StatusWorking})
	if got := m.percent(); got != 1 {
		t.Fatalf("percent = %v", got)
	}
	if m.failed != 1 || m.items[0].elapsed != "3ms" {
		t.Fatalf("failed=%d elapsed=%q", m.failed, m.items[0].elapsed)
	}

	m.applyEvent(driver.Event{Stage: driver.StageCache, Status: driver.StatusWorking})
	if m.stageLabel != "cache" {
		t.Fatalf("stage label = %q", m.stageLabel)
	}
	m.Update(doneMsg{})
	view := m.View()
	for _, want := range []string{"done: diag", "1 failed", "a.c", "error"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short.c", 20, "short.c"},
		{"a/very/long/path.c", 10, "a/very/..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, "abc"},
		{"include/shapes.h", 16, "include/shapes.h"},
		{"include/shapes.h", 15, "include/shap..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
	for width := 4; width < 12; width++ {
		if got := truncate("src/日本語/ヘッダ.h", width); runewidth.StringWidth(got) > width {
			t.Fatalf("truncate to %d gave %q, %d cells", width, got, runewidth.StringWidth(got))
		}
	}
}
