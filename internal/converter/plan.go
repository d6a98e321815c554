package converter

import (
	"cmp"
	"slices"

	"transcriptbatch/internal/batch"
	"transcriptbatch/internal/episode"
	"transcriptbatch/internal/fileutil"
)

type plannedFile struct {
	name          string
	index         int
	episodeNumber int
	title         string
}

// listTranscripts returns transcript names in lexical order, which makes the
// positional fallback numbering reproducible across platforms.
func listTranscripts(dir string) ([]string, error) {
	return fileutil.ListNames(dir, episode.IsTranscript)
}

// planFiles parses every name against its listing position and orders the
// result by episode number. Ties keep listing order.
func planFiles(names []string) []plannedFile {
	plan := make([]plannedFile, 0, len(names))
	for i, name := range names {
		num, title := episode.Parse(name, i)
		plan = append(plan, plannedFile{name: name, index: i, episodeNumber: num, title: title})
	}
	slices.SortStableFunc(plan, func(a, b plannedFile) int {
		return cmp.Compare(a.episodeNumber, b.episodeNumber)
	})
	return plan
}

// chunk splits records into consecutive groups of at most size.
func chunk(records []batch.Record, size int) [][]batch.Record {
	if size <= 0 || len(records) == 0 {
		return nil
	}
	chunks := make([][]batch.Record, 0, (len(records)+size-1)/size)
	for start := 0; start < len(records); start += size {
		end := min(start+size, len(records))
		chunks = append(chunks, records[start:end])
	}
	return chunks
}
