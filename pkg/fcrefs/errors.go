package fcrefs

import (
	"fmt"

	"github.com/ukaji3/fcrefs-go/pkg/fcrefs/models"
	"github.com/ukaji3/fcrefs-go/pkg/fcrefs/parser"
)

// ErrArchive indicates a candidate file is not a valid zip archive.
var ErrArchive = parser.ErrArchive

// ErrMalformedDocument indicates Document.xml is missing or unparsable.
var ErrMalformedDocument = parser.ErrMalformedDocument

// ErrMissingProperties indicates an Object without a Properties section.
var ErrMissingProperties = parser.ErrMissingProperties

// ErrInvalidReference indicates a reference string that cannot be parsed.
var ErrInvalidReference = models.ErrInvalidReference

// DocumentError represents a failure on one document of a corpus.
// The document is skipped; the scan continues.
type DocumentError struct {
	Path  string
	Stage string // "load", "walk"
	Err   error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document %q (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// NewDocumentError creates a new DocumentError.
func NewDocumentError(path, stage string, err error) *DocumentError {
	return &DocumentError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}

// InvalidOptionError reports an unsupported option value.
type InvalidOptionError struct {
	Option  string
	Value   string
	Allowed string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid %s: %s (must be %s)", e.Option, e.Value, e.Allowed)
}
