package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"clangview/internal/project"
)

func TestInit(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "build"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "build", "compile_commands.json"), "[]")

	code, out, errOut := run(t, "init", "--std", "c11", dir)
	if code != 0 {
		t.Fatalf("exit = %d, stderr:\n%s", code, errOut)
	}
	if !strings.Contains(out, project.ManifestName) {
		t.Fatalf("output = %q", out)
	}
	m, err := project.Load(filepath.Join(dir, project.ManifestName))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(m.Unknown) != 0 {
		t.Fatalf("unknown keys: %v", m.Unknown)
	}
	if m.Config.Parse.Std != "c11" || m.Config.CompDB.Dir != "build" || !m.Config.Cache.Enabled {
		t.Fatalf("config = %+v", m.Config)
	}

	code, _, errOut = run(t, "init", dir)
	if code != 2 || !strings.Contains(errOut, "already initialized") {
		t.Fatalf("second init: exit = %d, stderr:\n%s", code, errOut)
	}
}

func TestInitCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fresh")
	if code, _, errOut := run(t, "init", dir); code != 0 {
		t.Fatalf("exit = %d, stderr:\n%s", code, errOut)
	}
	if _, err := os.Stat(filepath.Join(dir, project.ManifestName)); err != nil {
		t.Fatalf("manifest missing: %v", err)
	}
}
