package verifier

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/google/uuid"

	"transcriptbatch/internal/batch"
	"transcriptbatch/internal/fileutil"
	"transcriptbatch/internal/logging"
)

const (
	// DefaultMissingListLimit bounds how many missing numbers are listed.
	DefaultMissingListLimit = 50
	// DefaultSampleSize is the number of entries shown from each end.
	DefaultSampleSize = 5
)

// Options configures a verification run. Zero values select the defaults.
type Options struct {
	BatchDir         string
	MissingListLimit int
	SampleSize       int
	Logger           *slog.Logger
}

// Verify audits the batch files in opts.BatchDir. Unreadable files are
// reported in Summary.FileErrors; an error is returned only when the
// directory cannot be listed for a reason other than absence, or ctx is
// cancelled.
func Verify(ctx context.Context, opts Options) (*Summary, error) {
	if opts.MissingListLimit <= 0 {
		opts.MissingListLimit = DefaultMissingListLimit
	}
	if opts.SampleSize <= 0 {
		opts.SampleSize = DefaultSampleSize
	}

	summary := &Summary{
		RunID:      uuid.NewString(),
		BatchDir:   opts.BatchDir,
		SampleSize: opts.SampleSize,
	}
	logger := logging.NewComponentLogger(opts.Logger, "verifier").With(slog.String(logging.FieldRunID, summary.RunID))

	names, err := fileutil.ListNames(opts.BatchDir, batch.IsBatchFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			summary.DirMissing = true
			logger.Warn("batch directory not found", slog.String("batch_dir", opts.BatchDir))
			return summary, nil
		}
		return nil, fmt.Errorf("list batch directory %q: %w", opts.BatchDir, err)
	}
	summary.BatchFiles = names
	if len(names) == 0 {
		logger.Warn("no batch files found", slog.String("batch_dir", opts.BatchDir))
		return summary, nil
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entries, err := batch.ReadEntries(filepath.Join(opts.BatchDir, name))
		if err != nil {
			summary.FileErrors = append(summary.FileErrors, FileError{Name: name, Err: err})
			logger.Warn("batch read failed", slog.String(logging.FieldBatch, name), logging.Error(err))
			continue
		}
		logger.Debug("batch read", slog.String(logging.FieldBatch, name), slog.Int("entries", len(entries)))
		summary.Entries = append(summary.Entries, entries...)
	}

	slices.SortStableFunc(summary.Entries, func(a, b batch.Entry) int {
		return cmp.Compare(a.EpisodeNumber, b.EpisodeNumber)
	})

	numbers := make([]int, len(summary.Entries))
	for i, entry := range summary.Entries {
		numbers[i] = entry.EpisodeNumber
	}
	summary.DuplicateCount, summary.Duplicated = findDuplicates(numbers)
	if len(numbers) > 0 {
		summary.HasRange = true
		summary.Min = numbers[0]
		summary.Max = numbers[len(numbers)-1]
		summary.MissingCount, summary.Missing = findGaps(numbers, opts.MissingListLimit)
	}

	logger.Info("verification finished",
		slog.Int("batch_files", len(names)),
		slog.Int("unreadable", len(summary.FileErrors)),
		slog.Int("entries", summary.Total()),
		slog.Int("duplicates", summary.DuplicateCount),
		slog.Int("missing", summary.MissingCount),
	)
	return summary, nil
}

// findDuplicates takes sorted numbers and returns the surplus count
// (len minus distinct) and the numbers seen more than once, ascending.
func findDuplicates(sorted []int) (int, []int) {
	surplus := 0
	var repeated []int
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1] {
			continue
		}
		surplus++
		if len(repeated) == 0 || repeated[len(repeated)-1] != sorted[i] {
			repeated = append(repeated, sorted[i])
		}
	}
	return surplus, repeated
}

// findGaps takes sorted numbers and counts the integers absent from
// [first, last]. The absent numbers are listed only when there are fewer
// than limit of them.
func findGaps(sorted []int, limit int) (int, []int) {
	count := 0
	var listed []int
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if cur-prev <= 1 {
			continue
		}
		count += cur - prev - 1
		for n := prev + 1; n < cur && len(listed) < limit; n++ {
			listed = append(listed, n)
		}
	}
	if count >= limit {
		return count, nil
	}
	return count, listed
}
