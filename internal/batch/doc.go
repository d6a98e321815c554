// Package batch defines the transcript batch file format shared by the
// converter and the verifier.
//
// A batch file is a JSON array of Record objects written with two-space
// indentation. Non-ASCII text and HTML-significant characters are written
// literally. Files are named batch_NNN.json by their 1-based creation
// sequence, independent of the episode numbers they contain.
package batch
