package verifier

import "transcriptbatch/internal/batch"

// FileError records a batch file that could not be read or decoded. Its
// entries are excluded from the summary.
type FileError struct {
	Name string
	Err  error
}

// Summary is the outcome of verifying a batch directory.
type Summary struct {
	RunID    string
	BatchDir string
	// DirMissing is set when the batch directory does not exist.
	DirMissing bool
	BatchFiles []string
	FileErrors []FileError
	// Entries holds every decoded entry ordered by episode number. Ties keep
	// file and element order.
	Entries []batch.Entry

	DuplicateCount int
	Duplicated     []int

	HasRange     bool
	Min          int
	Max          int
	MissingCount int
	// Missing lists the absent numbers in ascending order. It is nil when
	// MissingCount reached the listing limit.
	Missing []int

	SampleSize int
}

// NoBatches reports whether the directory held no batch files at all.
func (s *Summary) NoBatches() bool {
	return len(s.BatchFiles) == 0
}

// Total is the number of entries across all readable batch files.
func (s *Summary) Total() int {
	return len(s.Entries)
}

// Complete reports whether every number in the covered range is present.
func (s *Summary) Complete() bool {
	return s.HasRange && s.MissingCount == 0
}

// First returns up to SampleSize entries from the start of the sorted list.
func (s *Summary) First() []batch.Entry {
	n := min(s.SampleSize, len(s.Entries))
	return s.Entries[:n]
}

// Last returns up to SampleSize entries from the end of the sorted list.
func (s *Summary) Last() []batch.Entry {
	start := max(0, len(s.Entries)-s.SampleSize)
	return s.Entries[start:]
}
