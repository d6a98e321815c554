package main

import (
	"fmt"
	"io"

	"transcriptbatch/internal/converter"
)

func renderConvertReport(w io.Writer, report *converter.Report) {
	for _, line := range convertReportLines(report) {
		fmt.Fprintln(w, line)
	}
}

func convertReportLines(report *converter.Report) []string {
	if report.InputMissing {
		return []string{
			fmt.Sprintf("Error: Input directory not found: %s", report.InputDir),
			fmt.Sprintf("Wrote %d batch files.", report.BatchesWritten()),
		}
	}

	var lines []string
	for _, res := range report.ReadErrors() {
		lines = append(lines, fmt.Sprintf("Error reading file %s: %v", res.Filename, res.Err))
	}
	for _, res := range report.WriteErrors() {
		lines = append(lines, fmt.Sprintf("Error: Failed to write batch %s: %v", res.Name, res.Err))
	}
	lines = append(lines, fmt.Sprintf("Processed %d out of %d files.", report.Processed, report.Discovered))
	if failed := len(report.ReadErrors()); failed > 0 {
		lines = append(lines, fmt.Sprintf("Encountered errors reading %d files.", failed))
	}
	lines = append(lines, fmt.Sprintf("Wrote %d batch files.", report.BatchesWritten()))
	return lines
}
