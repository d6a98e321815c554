package textutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadFileUTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ep.txt")
	content := "Grüße aus Köln — 東京\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got != content {
		t.Fatalf("content mismatch: got %q, want %q", got, content)
	}
}

func TestReadFileInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "latin1.txt")
	if err := os.WriteFile(path, []byte{'c', 'a', 'f', 0xe9, '\n'}, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadFile(path)
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestReadFileDirectory(t *testing.T) {
	if _, err := ReadFile(t.TempDir()); err == nil {
		t.Fatal("expected error reading a directory")
	}
}

func TestReadNormalizesNewlines(t *testing.T) {
	got, err := Read(strings.NewReader("one\r\ntwo\rthree\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != "one\ntwo\nthree\n" {
		t.Fatalf("unexpected newline handling: %q", got)
	}
}
