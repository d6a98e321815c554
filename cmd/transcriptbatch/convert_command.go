package main

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"transcriptbatch/internal/converter"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var inputDir string
	var outputDir string
	var batchSize int

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert transcript .txt files into numbered JSON batch files",
		Example: "  transcriptbatch convert --input-dir ./transcripts --output-dir ./batches\n" +
			"  transcriptbatch convert --input-dir ./transcripts --output-dir ./batches --batch-size 5",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			size := cfg.Convert.BatchSize
			if cmd.Flags().Changed("batch-size") {
				if batchSize <= 0 {
					return fmt.Errorf("--batch-size must be positive, got %d", batchSize)
				}
				size = batchSize
			}

			opts := converter.Options{
				InputDir:   inputDir,
				OutputDir:  outputDir,
				BatchSize:  size,
				LockOutput: cfg.Convert.LockOutput,
				Logger:     logger,
			}
			if cfg.Convert.Progress && shouldColorize(cmd.ErrOrStderr()) {
				opts.NewProgress = newProgressBar(cmd.ErrOrStderr())
			}

			report, err := converter.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			renderConvertReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input-dir", "i", "", "Directory containing transcript .txt files")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory to write JSON batch files")
	cmd.Flags().IntVarP(&batchSize, "batch-size", "b", converter.DefaultBatchSize, "Number of transcripts per batch file (overrides convert.batch_size)")
	_ = cmd.MarkFlagRequired("input-dir")
	_ = cmd.MarkFlagRequired("output-dir")
	return cmd
}

func newProgressBar(w io.Writer) func(total int) converter.Progress {
	return func(total int) converter.Progress {
		return progressbar.NewOptions(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("reading transcripts"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}
}
