package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"transcriptbatch/internal/config"
	"transcriptbatch/internal/verifier"
)

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	var batchDir string
	var format string

	cmd := &cobra.Command{
		Use:     "verify",
		Short:   "Check JSON batch files for duplicate and missing episode numbers",
		Example: "  transcriptbatch verify --batch-dir ./batches\n  transcriptbatch verify --batch-dir ./batches --format json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			outputFormat := cfg.Verify.Format
			if cmd.Flags().Changed("format") {
				outputFormat = strings.ToLower(strings.TrimSpace(format))
				if err := config.ValidateFormat(outputFormat); err != nil {
					return fmt.Errorf("--format: %w", err)
				}
			}

			summary, err := verifier.Verify(cmd.Context(), verifier.Options{
				BatchDir:         batchDir,
				MissingListLimit: cfg.Verify.MissingListLimit,
				SampleSize:       cfg.Verify.SampleSize,
				Logger:           logger,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch outputFormat {
			case "json":
				return writeJSON(cmd, newVerifyJSON(summary))
			case "table":
				renderVerifyTables(out, summary, shouldColorize(out))
			default:
				renderVerifyText(out, summary, shouldColorize(out))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&batchDir, "batch-dir", "d", "", "Directory containing JSON batch files")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, table or json (overrides verify.format)")
	_ = cmd.MarkFlagRequired("batch-dir")
	return cmd
}
