package converter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"transcriptbatch/internal/batch"
	"transcriptbatch/internal/logging"
	"transcriptbatch/internal/textutil"
)

// DefaultBatchSize is the number of records per batch when none is given.
const DefaultBatchSize = 10

// Progress receives one tick per transcript read attempt.
type Progress interface {
	Add(n int) error
	Finish() error
}

// Options configures a conversion run.
type Options struct {
	InputDir   string
	OutputDir  string
	BatchSize  int
	LockOutput bool
	Logger     *slog.Logger
	// NewProgress, when set, is called once with the number of transcripts
	// about to be read.
	NewProgress func(total int) Progress
}

// Run converts the transcripts in opts.InputDir into batch files in
// opts.OutputDir. Per-file and per-batch failures are reported in the
// returned Report; an error is returned only when the run cannot start or
// ctx is cancelled.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.BatchSize == 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.BatchSize < 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d", opts.BatchSize)
	}

	report := &Report{
		RunID:     uuid.NewString(),
		InputDir:  opts.InputDir,
		OutputDir: opts.OutputDir,
		BatchSize: opts.BatchSize,
	}
	logger := logging.NewComponentLogger(opts.Logger, "converter").With(slog.String(logging.FieldRunID, report.RunID))

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %q: %w", opts.OutputDir, err)
	}
	if opts.LockOutput {
		unlock, err := lockOutputDir(opts.OutputDir)
		if err != nil {
			return nil, err
		}
		defer unlock()
	}

	names, err := listTranscripts(opts.InputDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			report.InputMissing = true
			logger.Warn("input directory not found", slog.String("input_dir", opts.InputDir))
			return report, nil
		}
		return nil, fmt.Errorf("list input directory %q: %w", opts.InputDir, err)
	}
	report.Discovered = len(names)
	logger.Debug("transcripts discovered", slog.Int("count", len(names)), slog.String("input_dir", opts.InputDir))

	var progress Progress
	if opts.NewProgress != nil && len(names) > 0 {
		progress = opts.NewProgress(len(names))
	}
	records, reads, err := readTranscripts(ctx, opts.InputDir, planFiles(names), progress, logger)
	report.Reads = reads
	if err != nil {
		return nil, err
	}
	report.Processed = len(records)

	writes, err := writeBatches(ctx, opts.OutputDir, chunk(records, opts.BatchSize), logger)
	report.Writes = writes
	if err != nil {
		return nil, err
	}

	logger.Info("conversion finished",
		slog.Int("processed", report.Processed),
		slog.Int("discovered", report.Discovered),
		slog.Int("read_errors", len(report.ReadErrors())),
		slog.Int("batches", report.BatchesWritten()),
		slog.String("transcript_bytes", humanize.Bytes(uint64(report.BytesRead()))),
	)
	return report, nil
}

func readTranscripts(ctx context.Context, dir string, plan []plannedFile, progress Progress, logger *slog.Logger) ([]batch.Record, []ReadResult, error) {
	records := make([]batch.Record, 0, len(plan))
	results := make([]ReadResult, 0, len(plan))
	if progress != nil {
		defer func() { _ = progress.Finish() }()
	}

	for _, file := range plan {
		if err := ctx.Err(); err != nil {
			return records, results, err
		}
		text, err := textutil.ReadFile(filepath.Join(dir, file.name))
		result := ReadResult{Filename: file.name, EpisodeNumber: file.episodeNumber, Bytes: len(text), Err: err}
		results = append(results, result)
		if progress != nil {
			_ = progress.Add(1)
		}
		if err != nil {
			logger.Warn("transcript read failed",
				slog.String(logging.FieldFile, file.name),
				logging.Error(err),
			)
			continue
		}
		logger.Debug("transcript read",
			slog.String(logging.FieldFile, file.name),
			slog.Int(logging.FieldEpisode, file.episodeNumber),
		)
		records = append(records, batch.Record{
			EpisodeNumber: file.episodeNumber,
			Title:         file.title,
			Transcript:    text,
			Filename:      file.name,
		})
	}
	return records, results, nil
}

// writeBatches writes chunk i to batch_{i+1}. A failed write keeps its
// sequence number so later chunks still land in their positional file.
func writeBatches(ctx context.Context, dir string, chunks [][]batch.Record, logger *slog.Logger) ([]WriteResult, error) {
	results := make([]WriteResult, 0, len(chunks))
	for i, records := range chunks {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		name := batch.Name(i + 1)
		path := filepath.Join(dir, name)
		err := batch.WriteFile(path, records)
		results = append(results, WriteResult{Sequence: i + 1, Name: name, Path: path, Records: len(records), Err: err})
		if err != nil {
			logger.Warn("batch write failed", slog.String(logging.FieldBatch, name), logging.Error(err))
			continue
		}
		logger.Debug("batch written", slog.String(logging.FieldBatch, name), slog.Int("records", len(records)))
	}
	return results, nil
}
