package batch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"transcriptbatch/internal/fileutil"
)

// Extension is the suffix of batch files.
const Extension = ".json"

// Record is one transcript in a batch file.
type Record struct {
	EpisodeNumber int    `json:"episode_number"`
	Title         string `json:"title"`
	Transcript    string `json:"transcript"`
	Filename      string `json:"filename"`
}

// Entry is the projection of a Record the verifier works with.
type Entry struct {
	EpisodeNumber int    `json:"episode_number"`
	Title         string `json:"title"`
	Filename      string `json:"filename"`
}

// Name returns the file name for the batch with the given 1-based sequence.
func Name(seq int) string {
	return fmt.Sprintf("batch_%03d%s", seq, Extension)
}

// IsBatchFile reports whether name looks like a batch file.
func IsBatchFile(name string) bool {
	return strings.HasSuffix(name, Extension)
}

// Encode writes records to w as an indented JSON array.
func Encode(w io.Writer, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// WriteFile atomically replaces path with the encoded records.
func WriteFile(path string, records []Record) error {
	var buf bytes.Buffer
	if err := Encode(&buf, records); err != nil {
		return fmt.Errorf("encode batch: %w", err)
	}
	return fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644)
}

// ReadRecords loads every record in the batch file at path.
func ReadRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode batch: %w", err)
	}
	return records, nil
}

type rawEntry struct {
	EpisodeNumber *int    `json:"episode_number"`
	Title         *string `json:"title"`
	Filename      *string `json:"filename"`
}

// ErrMissingField is returned when a batch element lacks a required key.
var ErrMissingField = errors.New("missing field")

// ReadEntries loads the batch file at path and projects each element to an
// Entry. Every element must carry episode_number, title and filename; the
// transcript body is not required.
func ReadEntries(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeEntries(data)
}

// DecodeEntries parses a batch file body into entries.
func DecodeEntries(data []byte) ([]Entry, error) {
	var raw []rawEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode batch: %w", err)
	}
	entries := make([]Entry, 0, len(raw))
	for i, r := range raw {
		switch {
		case r.EpisodeNumber == nil:
			return nil, fmt.Errorf("element %d: %w %q", i, ErrMissingField, "episode_number")
		case r.Title == nil:
			return nil, fmt.Errorf("element %d: %w %q", i, ErrMissingField, "title")
		case r.Filename == nil:
			return nil, fmt.Errorf("element %d: %w %q", i, ErrMissingField, "filename")
		}
		entries = append(entries, Entry{
			EpisodeNumber: *r.EpisodeNumber,
			Title:         *r.Title,
			Filename:      *r.Filename,
		})
	}
	return entries, nil
}
