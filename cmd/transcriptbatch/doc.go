// Package main hosts the transcriptbatch CLI entrypoint and command graph.
//
// The Cobra command tree exposes the batch converter and batch verifier,
// plus configuration scaffolding. It resolves configuration and logging once
// per invocation so subcommands only translate flags into converter and
// verifier options and render the resulting reports.
//
// Reports are written to stdout; structured logs go to stderr.
package main
