package models

import "fmt"

// Match represents a located use of a reference.
type Match struct {
	// Document is the file name of the document containing the use.
	Document string `json:"document" yaml:"document"`
	// Object is the name of the object holding the referencing property.
	Object string `json:"object" yaml:"object"`
	// Property is the holding property name ("cells" or "ExpressionEngine").
	Property string `json:"property" yaml:"property"`
	// Location is a cell address (e.g. "B1") or an expression path (e.g. "Radius").
	Location string `json:"location" yaml:"location"`
}

// String renders the match as "document object.location (property)".
func (m Match) String() string {
	return fmt.Sprintf("%s %s.%s (%s)", m.Document, m.Object, m.Location, m.Property)
}
