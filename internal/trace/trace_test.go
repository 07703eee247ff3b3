package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestParseLevelAndShouldEmit(t *testing.T) {
	tests := []struct {
		in    string
		level Level
		emits []Scope
		skips []Scope
	}{
		{"off", LevelOff, nil, []Scope{ScopeDriver}},
		{"PHASE", LevelPhase, []Scope{ScopeDriver, ScopeFile}, []Scope{ScopePhase}},
		{"detail", LevelDetail, []Scope{ScopePhase}, []Scope{ScopeCursor}},
		{"debug", LevelDebug, []Scope{ScopeCursor}, nil},
	}
	for _, tt := range tests {
		l, err := ParseLevel(tt.in)
		if err != nil || l != tt.level {
			t.Fatalf("ParseLevel(%q) = %v, %v", tt.in, l, err)
		}
		for _, s := range tt.emits {
			if !l.ShouldEmit(s) {
				t.Errorf("%s should emit %s", l, s)
			}
		}
		for _, s := range tt.skips {
			if l.ShouldEmit(s) {
				t.Errorf("%s should skip %s", l, s)
			}
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestStreamNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatNDJSON)
	root := Begin(tr, ScopeFile, "file:list.c", 0)
	Begin(tr, ScopeCursor, "cursor", root.ID()).End("")
	root.WithExtra("diagnostics", "1").End("ok")
	if err := tr.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d events, want 2:\n%s", len(lines), buf.String())
	}
	var end struct {
		Kind   string            `json:"kind"`
		Scope  string            `json:"scope"`
		Name   string            `json:"name"`
		Detail string            `json:"detail"`
		Extra  map[string]string `json:"extra"`
	}
	if err := json.Unmarshal([]byte(lines[1]), &end); err != nil {
		t.Fatalf("bad event %q: %v", lines[1], err)
	}
	if end.Kind != "end" || end.Scope != "file" || end.Detail != "ok" || end.Extra["diagnostics"] != "1" {
		t.Fatalf("end event = %+v", end)
	}
}

func TestStreamChromeIsValidJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatChrome)
	sp := Begin(tr, ScopeDriver, "diag", 0)
	Point(tr, ScopePhase, "cache-hit", "list.c", sp.ID())
	sp.End("")
	tr.Close()
	tr.Close()

	var doc struct {
		TraceEvents []struct {
			Name string            `json:"name"`
			Ph   string            `json:"ph"`
			Args map[string]string `json:"args"`
		} `json:"traceEvents"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid chrome trace: %v\n%s", err, buf.String())
	}
	var phases []string
	for _, ev := range doc.TraceEvents {
		phases = append(phases, ev.Ph)
	}
	if strings.Join(phases, "") != "BiE" {
		t.Fatalf("phases = %v", phases)
	}
	if doc.TraceEvents[1].Args["detail"] != "list.c" {
		t.Fatalf("point args = %v", doc.TraceEvents[1].Args)
	}
}

func TestRingWrapAndDump(t *testing.T) {
	r := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		Point(r, ScopePhase, name, "", 0)
	}
	var names []string
	for _, ev := range r.Snapshot() {
		names = append(names, ev.Name)
	}
	if strings.Join(names, "") != "cde" {
		t.Fatalf("snapshot = %v", names)
	}

	var buf bytes.Buffer
	if err := r.Dump(&buf, FormatText); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if got := strings.Count(buf.String(), "• "); got != 3 {
		t.Fatalf("text dump has %d points:\n%s", got, buf.String())
	}
	buf.Reset()
	if err := r.Dump(&buf, FormatChrome); err != nil || !json.Valid(buf.Bytes()) {
		t.Fatalf("chrome dump invalid (%v):\n%s", err, buf.String())
	}
}

func TestMultiAndNew(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelPhase, Mode: ModeBoth, Output: &buf, Format: FormatText})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	Begin(tr, ScopeFile, "file:a.c", 0).End("")
	m, ok := tr.(*MultiTracer)
	if !ok {
		t.Fatalf("ModeBoth built %T", tr)
	}
	ring, ok := m.Ring()
	if !ok || len(ring.Snapshot()) != 2 {
		t.Fatalf("ring missing or wrong size")
	}
	if !strings.Contains(buf.String(), "→ file:a.c") || !strings.Contains(buf.String(), "← file:a.c") {
		t.Fatalf("stream output:\n%s", buf.String())
	}

	off, err := New(Config{Level: LevelOff})
	if err != nil || off.Enabled() {
		t.Fatalf("LevelOff tracer = %T, %v", off, err)
	}
	if _, err := New(Config{Level: LevelPhase}); err == nil {
		t.Fatalf("expected error without a mode")
	}
}

func TestFormatForPath(t *testing.T) {
	tests := map[string]Format{
		"":           FormatText,
		"-":          FormatText,
		"run.ndjson": FormatNDJSON,
		"trace.json": FormatChrome,
		"run.trace":  FormatText,
	}
	for path, want := range tests {
		if got := FormatForPath(path); got != want {
			t.Errorf("FormatForPath(%q) = %s, want %s", path, got, want)
		}
	}
}

func TestStartPropagatesParent(t *testing.T) {
	r := NewRingTracer(16, LevelDebug)
	ctx := WithTracer(context.Background(), r)
	ctx, outer := Start(ctx, ScopeDriver, "diag")
	_, inner := Start(ctx, ScopeFile, "file:b.c")
	inner.End("")
	outer.End("")

	events := r.Snapshot()
	if len(events) != 4 {
		t.Fatalf("got %d events", len(events))
	}
	if events[1].ParentID != outer.ID() {
		t.Fatalf("inner parent = %d, want %d", events[1].ParentID, outer.ID())
	}

	if _, sp := Start(context.Background(), ScopeDriver, "x"); sp.End("") != 0 {
		t.Fatalf("span without tracer should be inert")
	}
}

func TestHeartbeat(t *testing.T) {
	r := NewRingTracer(64, LevelPhase)
	hb := StartHeartbeat(r, time.Millisecond)
	deadline := time.Now().Add(2 * time.Second)
	for len(r.Snapshot()) == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	hb.Stop()
	hb.Stop()
	if len(r.Snapshot()) == 0 || r.Snapshot()[0].Kind != KindHeartbeat {
		t.Fatalf("no heartbeat recorded")
	}
	if StartHeartbeat(Nop, time.Millisecond) != nil {
		t.Fatalf("heartbeat on a disabled tracer")
	}
}
