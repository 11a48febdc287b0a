package site

// Failure records one file that could not be converted and why.
type Failure struct {
	File string
	Err  error
}

// Report summarizes a batch build. A failed file never aborts the batch;
// every outcome lands here and successfully converted files are retained
// regardless of other failures.
type Report struct {
	Converted []string
	Skipped   []string
	Failures  []Failure
}

// Failed reports whether any file in the batch failed.
func (r *Report) Failed() bool {
	return len(r.Failures) > 0
}
