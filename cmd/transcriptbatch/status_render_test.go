package main

import (
	"io"
	"strings"
	"testing"

	"transcriptbatch/internal/converter"
)

func TestPaintNoColor(t *testing.T) {
	if got := paint(statusWarn, "Warning: x", false); got != "Warning: x" {
		t.Fatalf("expected plain text, got %q", got)
	}
}

func TestPaintWithColor(t *testing.T) {
	got := paint(statusOK, "Success", true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatalf("expected non-file writer to disable color")
	}
}

func TestFormatIntList(t *testing.T) {
	tests := []struct {
		in   []int
		want string
	}{
		{nil, "[]"},
		{[]int{3}, "[3]"},
		{[]int{2, 5, 11}, "[2, 5, 11]"},
	}
	for _, tt := range tests {
		if got := formatIntList(tt.in); got != tt.want {
			t.Fatalf("formatIntList(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConvertReportLinesWriteFailure(t *testing.T) {
	report := &converter.Report{
		Discovered: 3,
		Processed:  3,
		Writes: []converter.WriteResult{
			{Sequence: 1, Name: "batch_001.json", Records: 2},
			{Sequence: 2, Name: "batch_002.json", Records: 1, Err: io.ErrShortWrite},
		},
	}
	got := strings.Join(convertReportLines(report), "\n")
	want := "Error: Failed to write batch batch_002.json: short write\n" +
		"Processed 3 out of 3 files.\n" +
		"Wrote 1 batch files."
	if got != want {
		t.Fatalf("report mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable([]string{"A", "B"}, [][]string{{"only"}}, []columnAlignment{alignLeft, alignRight})
	if !strings.Contains(out, "only") || !strings.Contains(out, "A") {
		t.Fatalf("unexpected table:\n%s", out)
	}
	if renderTable(nil, nil, nil) != "" {
		t.Fatal("expected empty output without headers")
	}
}
