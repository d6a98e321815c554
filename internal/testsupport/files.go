package testsupport

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"transcriptbatch/internal/batch"
)

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(t testing.TB, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteTranscripts creates one file per entry of files (name to contents) in
// dir and returns dir.
func WriteTranscripts(t testing.TB, dir string, files map[string]string) string {
	t.Helper()

	for name, body := range files {
		WriteFile(t, filepath.Join(dir, name), []byte(body))
	}
	return dir
}

// WriteBatch encodes records into dir/name the way the converter would.
func WriteBatch(t testing.TB, dir, name string, records []batch.Record) {
	t.Helper()

	var buf bytes.Buffer
	if err := batch.Encode(&buf, records); err != nil {
		t.Fatalf("encode batch %s: %v", name, err)
	}
	WriteFile(t, filepath.Join(dir, name), buf.Bytes())
}

// Records builds minimal records for the given episode numbers.
func Records(numbers ...int) []batch.Record {
	records := make([]batch.Record, 0, len(numbers))
	for _, n := range numbers {
		records = append(records, batch.Record{
			EpisodeNumber: n,
			Title:         "Episode",
			Transcript:    "text",
			Filename:      "episode.txt",
		})
	}
	return records
}

// ReadDirNames lists the entries of dir, failing the test on error.
func ReadDirNames(t testing.TB, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}
