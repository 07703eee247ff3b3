package version

import (
	"bytes"
	"strings"
	"testing"
)

func TestCurrent(t *testing.T) {
	orig := GitCommit
	t.Cleanup(func() { GitCommit = orig })
	GitCommit = "abc123"

	info := Current()
	if info.Version == "" || info.GitCommit != "abc123" {
		t.Fatalf("info = %+v", info)
	}
}

func TestWrite(t *testing.T) {
	info := Info{Version: "1.2.3", Libclang: "clang version 17.0.6", Supported: "17.0"}
	var buf bytes.Buffer
	if err := info.Write(&buf, false); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "clangview: 1.2.3\n" +
		"libclang:  clang version 17.0.6\n" +
		"matched:   17.0\n"
	if buf.String() != want {
		t.Fatalf("got:\n%q\nwant:\n%q", buf.String(), want)
	}

	buf.Reset()
	if err := info.Write(&buf, true); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected escape sequences when colored: %q", buf.String())
	}
}
