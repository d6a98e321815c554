package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"transcriptbatch/internal/batch"
	"transcriptbatch/internal/verifier"
)

func renderVerifyText(w io.Writer, summary *verifier.Summary, colorize bool) {
	for _, line := range verifyTextLines(summary, colorize) {
		fmt.Fprintln(w, line)
	}
}

func verifyTextLines(summary *verifier.Summary, colorize bool) []string {
	if lines, done := verifyPreamble(summary, colorize); done {
		return lines
	}

	lines := []string{fmt.Sprintf("Found %d batch files.", len(summary.BatchFiles))}
	for _, fe := range summary.FileErrors {
		lines = append(lines, paint(statusError, fmt.Sprintf("Error reading %s: %v", fe.Name, fe.Err), colorize))
	}
	lines = append(lines, fmt.Sprintf("Total files found: %d", summary.Total()))

	if summary.DuplicateCount > 0 {
		lines = append(lines,
			paint(statusWarn, fmt.Sprintf("Warning: Found %d duplicate file numbers.", summary.DuplicateCount), colorize),
			"Duplicated file numbers: "+formatIntList(summary.Duplicated),
		)
	}

	if summary.HasRange {
		if summary.MissingCount > 0 {
			lines = append(lines, paint(statusWarn,
				fmt.Sprintf("Warning: Missing %d files in the range %d-%d:", summary.MissingCount, summary.Min, summary.Max), colorize))
			if summary.Missing != nil {
				lines = append(lines, formatIntList(summary.Missing))
			}
		} else {
			lines = append(lines, paint(statusOK,
				fmt.Sprintf("Success: All files in range %d-%d are present.", summary.Min, summary.Max), colorize))
		}
	}

	lines = append(lines, "", fmt.Sprintf("First %d files:", summary.SampleSize))
	lines = append(lines, sampleLines(summary.First())...)
	lines = append(lines, "", fmt.Sprintf("Last %d files:", summary.SampleSize))
	lines = append(lines, sampleLines(summary.Last())...)
	return lines
}

// verifyPreamble handles the summaries that stop before aggregation.
func verifyPreamble(summary *verifier.Summary, colorize bool) ([]string, bool) {
	switch {
	case summary.DirMissing:
		return []string{paint(statusError, fmt.Sprintf("Error: Batch directory not found: %s", summary.BatchDir), colorize)}, true
	case summary.NoBatches():
		return []string{paint(statusError, fmt.Sprintf("Error: No batch files found in %s", summary.BatchDir), colorize)}, true
	default:
		return nil, false
	}
}

func sampleLines(entries []batch.Entry) []string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("  %d: %s", e.EpisodeNumber, e.Title))
	}
	return lines
}

// formatIntList renders numbers as "[1, 2, 3]".
func formatIntList(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func renderVerifyTables(w io.Writer, summary *verifier.Summary, colorize bool) {
	if lines, done := verifyPreamble(summary, colorize); done {
		for _, line := range lines {
			fmt.Fprintln(w, line)
		}
		return
	}

	for _, line := range renderSectionHeader("Summary", colorize) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, renderTable([]string{"Check", "Value"}, verifySummaryRows(summary), []columnAlignment{alignLeft, alignRight}))

	if len(summary.FileErrors) > 0 {
		fmt.Fprintln(w)
		for _, line := range renderSectionHeader("Unreadable batch files", colorize) {
			fmt.Fprintln(w, line)
		}
		rows := make([][]string, 0, len(summary.FileErrors))
		for _, fe := range summary.FileErrors {
			rows = append(rows, []string{fe.Name, fe.Err.Error()})
		}
		fmt.Fprintln(w, renderTable([]string{"File", "Error"}, rows, nil))
	}

	if summary.Total() == 0 {
		return
	}
	fmt.Fprintln(w)
	for _, line := range renderSectionHeader("Samples", colorize) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, renderTable(
		[]string{"Position", "Episode", "Title", "Filename"},
		sampleRows(summary),
		[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft},
	))
}

func verifySummaryRows(summary *verifier.Summary) [][]string {
	rows := [][]string{
		{"Batch files", strconv.Itoa(len(summary.BatchFiles))},
		{"Unreadable files", strconv.Itoa(len(summary.FileErrors))},
		{"Total entries", strconv.Itoa(summary.Total())},
		{"Duplicates", strconv.Itoa(summary.DuplicateCount)},
	}
	if summary.DuplicateCount > 0 {
		rows = append(rows, []string{"Duplicated numbers", formatIntList(summary.Duplicated)})
	}
	if summary.HasRange {
		rows = append(rows,
			[]string{"Range", fmt.Sprintf("%d-%d", summary.Min, summary.Max)},
			[]string{"Missing", strconv.Itoa(summary.MissingCount)},
		)
		if len(summary.Missing) > 0 {
			rows = append(rows, []string{"Missing numbers", formatIntList(summary.Missing)})
		}
	}
	return rows
}

func sampleRows(summary *verifier.Summary) [][]string {
	var rows [][]string
	for _, e := range summary.First() {
		rows = append(rows, []string{"first", strconv.Itoa(e.EpisodeNumber), e.Title, e.Filename})
	}
	for _, e := range summary.Last() {
		rows = append(rows, []string{"last", strconv.Itoa(e.EpisodeNumber), e.Title, e.Filename})
	}
	return rows
}

type verifyRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type verifyFileError struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

type verifyJSON struct {
	RunID          string            `json:"run_id"`
	BatchDir       string            `json:"batch_dir"`
	DirMissing     bool              `json:"dir_missing"`
	BatchFiles     []string          `json:"batch_files"`
	FileErrors     []verifyFileError `json:"file_errors"`
	TotalEntries   int               `json:"total_entries"`
	DuplicateCount int               `json:"duplicate_count"`
	Duplicated     []int             `json:"duplicated"`
	Range          *verifyRange      `json:"range,omitempty"`
	MissingCount   int               `json:"missing_count"`
	Missing        []int             `json:"missing"`
	MissingListed  bool              `json:"missing_listed"`
	First          []batch.Entry     `json:"first"`
	Last           []batch.Entry     `json:"last"`
}

func newVerifyJSON(summary *verifier.Summary) verifyJSON {
	view := verifyJSON{
		RunID:          summary.RunID,
		BatchDir:       summary.BatchDir,
		DirMissing:     summary.DirMissing,
		BatchFiles:     nonNil(summary.BatchFiles),
		FileErrors:     []verifyFileError{},
		TotalEntries:   summary.Total(),
		DuplicateCount: summary.DuplicateCount,
		Duplicated:     nonNil(summary.Duplicated),
		MissingCount:   summary.MissingCount,
		Missing:        nonNil(summary.Missing),
		MissingListed:  summary.Missing != nil || summary.MissingCount == 0,
		First:          nonNil(summary.First()),
		Last:           nonNil(summary.Last()),
	}
	for _, fe := range summary.FileErrors {
		view.FileErrors = append(view.FileErrors, verifyFileError{File: fe.Name, Error: fe.Err.Error()})
	}
	if summary.HasRange {
		view.Range = &verifyRange{Min: summary.Min, Max: summary.Max}
	}
	return view
}
