// Package trace records spans and instant events of a clangview run.
//
// Tracing is enabled from the command line:
//
//	clangview diag --trace=- --trace-level=detail src/*.c
//
// Tracers:
//
//   - Nop discards everything and is returned when tracing is off.
//   - StreamTracer writes each event as it happens.
//   - RingTracer keeps the last events in memory for a crash dump.
//   - MultiTracer fans events out to several tracers.
//
// Every event carries a Scope. The configured Level decides which scopes
// are recorded: LevelPhase records driver and file spans, LevelDetail adds
// the per-file phases (parse, tokenize, walk) and LevelDebug adds cursor
// level events.
//
// Tracers travel through a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	sp := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "file:list.c", 0)
//	defer sp.End("")
package trace
