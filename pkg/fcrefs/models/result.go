package models

// SkippedDocument records a document left out of a scan.
type SkippedDocument struct {
	// Document is the file name of the skipped document.
	Document string `json:"document" yaml:"document"`
	// Reason is the error message explaining why it was skipped.
	Reason string `json:"reason" yaml:"reason"`
	// Err is the underlying error; match it with errors.Is against the
	// package sentinels or errors.As against *fcrefs.DocumentError.
	Err error `json:"-" yaml:"-"`
}

// ScanResult is the outcome of scanning a corpus for one reference.
type ScanResult struct {
	// Reference is the reference that was searched for.
	Reference Reference `json:"reference" yaml:"reference"`
	// Matches lists every use found, in corpus order.
	Matches []Match `json:"matches" yaml:"matches"`
	// Skipped lists documents that could not be loaded or walked.
	Skipped []SkippedDocument `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	// Documents is the number of candidate documents discovered.
	Documents int `json:"documents" yaml:"documents"`
}
