// Package textutil reads transcript text from disk.
//
// Transcripts are expected to be UTF-8. Reads stream through a validating
// transformer so malformed input is rejected instead of being silently
// replaced, and line endings are normalised to "\n" so the same transcript
// produces identical batch output regardless of the platform that wrote it.
package textutil
