package episode

import (
	"regexp"
	"strconv"
	"strings"
)

// Extension is the file suffix recognised as a transcript, compared
// case-insensitively.
const Extension = ".txt"

var (
	numberPattern = regexp.MustCompile(`^(\d+)-`)
	titlePattern  = regexp.MustCompile(`^\d+-#\d+\s*-\s*(.*)`)
)

// IsTranscript reports whether name carries the transcript extension.
func IsTranscript(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), Extension)
}

// Parse returns the episode number and title for filename. fallback is used
// as the number when the name has no leading "<digits>-" prefix.
func Parse(filename string, fallback int) (int, string) {
	return Number(filename, fallback), Title(filename)
}

// Number extracts the leading digit run of filename, or returns fallback.
// A digit run too large for int is treated as absent.
func Number(filename string, fallback int) int {
	m := numberPattern.FindStringSubmatch(filename)
	if m == nil {
		return fallback
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return fallback
	}
	return n
}

// Title strips the transcript extension and, when present, the
// "<n>-#<n> - " prefix.
func Title(filename string) string {
	title := filename
	if IsTranscript(title) {
		title = title[:len(title)-len(Extension)]
	}
	if m := titlePattern.FindStringSubmatch(title); m != nil {
		return strings.TrimSpace(m[1])
	}
	return title
}
