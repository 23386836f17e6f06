package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunConcatenatesWithZeroByteSeparator(t *testing.T) {
	dir := t.TempDir()
	p1 := writeTemp(t, dir, "a.txt", "hello")
	p2 := writeTemp(t, dir, "b.txt", "world")

	var buf bytes.Buffer
	if err := run([]string{p1, p2}, &buf); err != nil {
		t.Fatal(err)
	}

	want := "hello\x00world"
	if buf.String() != want {
		t.Errorf("run() = %q, want %q", buf.String(), want)
	}
}

func TestRunSingleFileNoTrailingSeparator(t *testing.T) {
	dir := t.TempDir()
	p1 := writeTemp(t, dir, "a.txt", "hello")

	var buf bytes.Buffer
	if err := run([]string{p1}, &buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "hello" {
		t.Errorf("run() = %q, want %q (no trailing separator)", buf.String(), "hello")
	}
}

func TestRunMissingFileErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := run([]string{"/nonexistent/path/that/does/not/exist"}, &buf); err == nil {
		t.Error("expected an error for a missing file")
	}
}
