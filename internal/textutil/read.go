package textutil

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ErrInvalidUTF8 is returned when a file contains bytes that are not valid UTF-8.
var ErrInvalidUTF8 = encoding.ErrInvalidUTF8

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ReadFile returns the contents of path as text. Invalid UTF-8 yields an
// error wrapping ErrInvalidUTF8.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return Read(f)
}

// Read drains r through a UTF-8 validator and normalises line endings.
func Read(r io.Reader) (string, error) {
	var b strings.Builder
	if _, err := io.Copy(&b, transform.NewReader(r, encoding.UTF8Validator)); err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}
	return NormalizeNewlines(b.String()), nil
}

// NormalizeNewlines rewrites CRLF and lone CR line endings to LF.
func NormalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	return newlineReplacer.Replace(s)
}
