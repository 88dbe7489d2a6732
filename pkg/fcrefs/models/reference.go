// Package models defines data structures for cross-document reference lookup.
package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidReference indicates a reference string that cannot be split into
// document, object and property parts.
var ErrInvalidReference = errors.New("invalid reference")

// Reference identifies a symbol in another document.
type Reference struct {
	// Document is the file or label name of the document owning the symbol.
	Document string `json:"document" yaml:"document"`
	// Object is the object or spreadsheet name.
	Object string `json:"object" yaml:"object"`
	// Property is the property or alias name.
	Property string `json:"property" yaml:"property"`
}

// NewReference creates a Reference from its three parts.
func NewReference(document, object, property string) Reference {
	return Reference{
		Document: document,
		Object:   object,
		Property: property,
	}
}

// String renders the reference as document#object.property.
// The same form is what the scanner searches for.
func (r Reference) String() string {
	return fmt.Sprintf("%s#%s.%s", r.Document, r.Object, r.Property)
}

// ParseReference parses a reference written as document#object.property.
// The document ends at the first '#', the object at the first '.' after it.
func ParseReference(s string) (Reference, error) {
	hash := strings.Index(s, "#")
	if hash < 0 {
		return Reference{}, fmt.Errorf("%w: %q: missing '#'", ErrInvalidReference, s)
	}
	document, rest := s[:hash], s[hash+1:]

	dot := strings.Index(rest, ".")
	if dot < 0 {
		return Reference{}, fmt.Errorf("%w: %q: missing '.'", ErrInvalidReference, s)
	}
	object, property := rest[:dot], rest[dot+1:]

	ref := NewReference(document, object, property)
	if err := ref.Validate(); err != nil {
		return Reference{}, err
	}
	return ref, nil
}

// Validate reports ErrInvalidReference when any part is empty.
func (r Reference) Validate() error {
	if r.Document == "" || r.Object == "" || r.Property == "" {
		return fmt.Errorf("%w: %q: empty part", ErrInvalidReference, r.String())
	}
	return nil
}
