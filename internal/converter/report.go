package converter

// ReadResult is the outcome of reading one transcript file.
type ReadResult struct {
	Filename      string
	EpisodeNumber int
	Bytes         int
	Err           error
}

// WriteResult is the outcome of writing one batch file.
type WriteResult struct {
	Sequence int
	Name     string
	Path     string
	Records  int
	Err      error
}

// Report summarises a conversion run.
type Report struct {
	RunID        string
	InputDir     string
	OutputDir    string
	BatchSize    int
	InputMissing bool
	Discovered   int
	Processed    int
	Reads        []ReadResult
	Writes       []WriteResult
}

// ReadErrors returns the reads that failed, in processing order.
func (r *Report) ReadErrors() []ReadResult {
	var failed []ReadResult
	for _, res := range r.Reads {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// WriteErrors returns the batch writes that failed, in sequence order.
func (r *Report) WriteErrors() []WriteResult {
	var failed []WriteResult
	for _, res := range r.Writes {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// BatchesWritten counts batch files that were written successfully.
func (r *Report) BatchesWritten() int {
	n := 0
	for _, res := range r.Writes {
		if res.Err == nil {
			n++
		}
	}
	return n
}

// BytesRead totals the transcript bytes that were read successfully.
func (r *Report) BytesRead() int {
	total := 0
	for _, res := range r.Reads {
		if res.Err == nil {
			total += res.Bytes
		}
	}
	return total
}
