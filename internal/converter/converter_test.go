package converter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"transcriptbatch/internal/batch"
	"transcriptbatch/internal/testsupport"
	"transcriptbatch/internal/textutil"
)

func runConverter(t *testing.T, opts Options) *Report {
	t.Helper()
	report, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return report
}

func TestRunTwoFiles(t *testing.T) {
	in := testsupport.WriteTranscripts(t, t.TempDir(), map[string]string{
		"2-#2 - Second.txt": "second transcript",
		"1-#1 - First.txt":  "first transcript",
	})
	out := filepath.Join(t.TempDir(), "batches")

	report := runConverter(t, Options{InputDir: in, OutputDir: out, BatchSize: 10})

	if report.Discovered != 2 || report.Processed != 2 {
		t.Fatalf("expected 2/2 processed, got %d/%d", report.Processed, report.Discovered)
	}
	if got := report.BatchesWritten(); got != 1 {
		t.Fatalf("expected 1 batch, got %d", got)
	}
	records, err := batch.ReadRecords(filepath.Join(out, "batch_001.json"))
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	want := []batch.Record{
		{EpisodeNumber: 1, Title: "First", Transcript: "first transcript", Filename: "1-#1 - First.txt"},
		{EpisodeNumber: 2, Title: "Second", Transcript: "second transcript", Filename: "2-#2 - Second.txt"},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestRunChunking(t *testing.T) {
	tests := []struct {
		name      string
		files     int
		batchSize int
		want      []int
	}{
		{name: "exact multiple", files: 4, batchSize: 2, want: []int{2, 2}},
		{name: "remainder", files: 5, batchSize: 2, want: []int{2, 2, 1}},
		{name: "single batch", files: 3, batchSize: 10, want: []int{3}},
		{name: "one per batch", files: 3, batchSize: 1, want: []int{1, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := make(map[string]string, tt.files)
			for i := 1; i <= tt.files; i++ {
				files[batchTestName(i)] = "body"
			}
			in := testsupport.WriteTranscripts(t, t.TempDir(), files)
			out := t.TempDir()

			report := runConverter(t, Options{InputDir: in, OutputDir: out, BatchSize: tt.batchSize})

			if got := report.BatchesWritten(); got != len(tt.want) {
				t.Fatalf("expected %d batches, got %d", len(tt.want), got)
			}
			next := 1
			for i, size := range tt.want {
				records, err := batch.ReadRecords(filepath.Join(out, batch.Name(i+1)))
				if err != nil {
					t.Fatalf("ReadRecords %d: %v", i+1, err)
				}
				if len(records) != size {
					t.Fatalf("batch %d: expected %d records, got %d", i+1, size, len(records))
				}
				for _, rec := range records {
					if rec.EpisodeNumber != next {
						t.Fatalf("batch %d: expected episode %d, got %d", i+1, next, rec.EpisodeNumber)
					}
					next++
				}
			}
		})
	}
}

func batchTestName(n int) string {
	return fmt.Sprintf("%02d-#%d - Episode.txt", n, n)
}

func TestRunEmptyInput(t *testing.T) {
	in := testsupport.WriteTranscripts(t, t.TempDir(), map[string]string{"notes.md": "ignored"})
	out := t.TempDir()

	report := runConverter(t, Options{InputDir: in, OutputDir: out})

	if report.Discovered != 0 || report.BatchesWritten() != 0 {
		t.Fatalf("expected nothing processed, got %+v", report)
	}
	if names := testsupport.ReadDirNames(t, out); len(names) != 0 {
		t.Fatalf("expected empty output dir, got %v", names)
	}
}

func TestRunMissingInput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")

	report := runConverter(t, Options{InputDir: filepath.Join(t.TempDir(), "absent"), OutputDir: out})

	if !report.InputMissing {
		t.Fatalf("expected InputMissing")
	}
	if report.BatchesWritten() != 0 {
		t.Fatalf("expected no batches")
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("expected output dir to be created: %v", err)
	}
}

func TestRunReadErrorsContinue(t *testing.T) {
	in := testsupport.WriteTranscripts(t, t.TempDir(), map[string]string{
		"1-#1 - Good.txt": "good",
		"3-#3 - Also.txt": "also good",
	})
	testsupport.WriteFile(t, filepath.Join(in, "2-#2 - Binary.txt"), []byte{0xff, 0xfe, 'x'})
	if err := os.Mkdir(filepath.Join(in, "4-dir.txt"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	out := t.TempDir()

	report := runConverter(t, Options{InputDir: in, OutputDir: out})

	if report.Discovered != 4 || report.Processed != 2 {
		t.Fatalf("expected 2 of 4 processed, got %d of %d", report.Processed, report.Discovered)
	}
	failed := report.ReadErrors()
	if len(failed) != 2 {
		t.Fatalf("expected 2 read errors, got %d", len(failed))
	}
	if failed[0].Filename != "2-#2 - Binary.txt" || !errors.Is(failed[0].Err, textutil.ErrInvalidUTF8) {
		t.Fatalf("expected invalid UTF-8 error first, got %+v", failed[0])
	}
	if failed[1].Filename != "4-dir.txt" {
		t.Fatalf("expected directory read error second, got %+v", failed[1])
	}
	records, err := batch.ReadRecords(filepath.Join(out, "batch_001.json"))
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if len(records) != 2 || records[0].EpisodeNumber != 1 || records[1].EpisodeNumber != 3 {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestRunIdempotent(t *testing.T) {
	in := testsupport.WriteTranscripts(t, t.TempDir(), map[string]string{
		"1-#1 - A.txt": "alpha <b>&</b> café",
		"2-#2 - B.txt": "beta\r\nline",
		"3-#3 - C.txt": "gamma",
	})
	first, second := t.TempDir(), t.TempDir()

	runConverter(t, Options{InputDir: in, OutputDir: first, BatchSize: 2})
	runConverter(t, Options{InputDir: in, OutputDir: second, BatchSize: 2})
	runConverter(t, Options{InputDir: in, OutputDir: second, BatchSize: 2})

	for _, name := range []string{"batch_001.json", "batch_002.json"} {
		a, err := os.ReadFile(filepath.Join(first, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		b, err := os.ReadFile(filepath.Join(second, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if !bytes.Equal(a, b) {
			t.Fatalf("%s differs between runs", name)
		}
	}
	data, err := os.ReadFile(filepath.Join(first, "batch_001.json"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Contains(data, []byte("<b>&</b> café")) {
		t.Fatalf("expected HTML and non-ASCII to be written verbatim:\n%s", data)
	}
	if !bytes.Contains(data, []byte(`"beta\nline"`)) {
		t.Fatalf("expected CRLF to be normalised:\n%s", data)
	}
}

func TestRunTiesKeepListingOrder(t *testing.T) {
	in := testsupport.WriteTranscripts(t, t.TempDir(), map[string]string{
		"5-b.txt": "b",
		"5-a.txt": "a",
		"4-z.txt": "z",
	})
	out := t.TempDir()

	runConverter(t, Options{InputDir: in, OutputDir: out})

	records, err := batch.ReadRecords(filepath.Join(out, "batch_001.json"))
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	var got []string
	for _, rec := range records {
		got = append(got, rec.Filename)
	}
	want := []string{"4-z.txt", "5-a.txt", "5-b.txt"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestRunFallbackNumbering(t *testing.T) {
	in := testsupport.WriteTranscripts(t, t.TempDir(), map[string]string{
		"bonus.txt":  "bonus",
		"intro.TXT":  "intro",
		"7-late.txt": "late",
	})
	out := t.TempDir()

	runConverter(t, Options{InputDir: in, OutputDir: out})

	records, err := batch.ReadRecords(filepath.Join(out, "batch_001.json"))
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	// Listing order is 7-late.txt, bonus.txt, intro.TXT.
	want := []batch.Record{
		{EpisodeNumber: 1, Title: "bonus", Transcript: "bonus", Filename: "bonus.txt"},
		{EpisodeNumber: 2, Title: "intro", Transcript: "intro", Filename: "intro.TXT"},
		{EpisodeNumber: 7, Title: "7-late", Transcript: "late", Filename: "7-late.txt"},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestRunRejectsNegativeBatchSize(t *testing.T) {
	if _, err := Run(context.Background(), Options{InputDir: t.TempDir(), OutputDir: t.TempDir(), BatchSize: -1}); err == nil {
		t.Fatal("expected error for negative batch size")
	}
}

func TestRunOutputLockHeld(t *testing.T) {
	in := testsupport.WriteTranscripts(t, t.TempDir(), map[string]string{"1-a.txt": "a"})
	out := t.TempDir()

	unlock, err := lockOutputDir(out)
	if err != nil {
		t.Fatalf("lockOutputDir: %v", err)
	}
	defer unlock()

	_, err = Run(context.Background(), Options{InputDir: in, OutputDir: out, LockOutput: true})
	if !errors.Is(err, ErrOutputLocked) {
		t.Fatalf("expected ErrOutputLocked, got %v", err)
	}
}

func TestRunCancelled(t *testing.T) {
	in := testsupport.WriteTranscripts(t, t.TempDir(), map[string]string{"1-a.txt": "a"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Run(ctx, Options{InputDir: in, OutputDir: t.TempDir()}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

type countingProgress struct {
	added    int
	finished bool
}

func (p *countingProgress) Add(n int) error { p.added += n; return nil }
func (p *countingProgress) Finish() error   { p.finished = true; return nil }

func TestRunReportsProgress(t *testing.T) {
	in := testsupport.WriteTranscripts(t, t.TempDir(), map[string]string{"1-a.txt": "a", "2-b.txt": "b"})
	progress := &countingProgress{}

	var total int
	newProgress := func(n int) Progress {
		total = n
		return progress
	}

	runConverter(t, Options{InputDir: in, OutputDir: t.TempDir(), NewProgress: newProgress})

	if total != 2 || progress.added != 2 || !progress.finished {
		t.Fatalf("unexpected progress state: %+v", progress)
	}
}
