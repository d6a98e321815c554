// Package converter turns a directory of transcript text files into numbered
// JSON batch files.
//
// A run lists the *.txt entries of the input directory, derives episode
// numbers and titles from their names, orders them by episode number, reads
// each transcript, and writes the records in fixed-size chunks. Failures on
// individual files or batches are recorded in the returned Report and never
// abort the run; only precondition failures (the output directory cannot be
// created or is locked by another conversion) are returned as errors.
package converter
