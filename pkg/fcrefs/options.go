// Package fcrefs finds cross-document references in a directory of FCStd documents.
package fcrefs

import "github.com/ukaji3/fcrefs-go/pkg/fcrefs/parser"

// MatchMode selects how a reference is recognised inside cell contents and expressions.
type MatchMode string

const (
	// MatchLiteral matches the reference string anywhere in the content.
	// Main#Sheet.Value also matches inside Main#Sheet.Value2.
	MatchLiteral MatchMode = parser.MatchLiteral
	// MatchPattern compiles the unescaped reference string as a regular expression.
	MatchPattern MatchMode = parser.MatchPattern
	// MatchExact matches the reference string only when it is not part of a longer name.
	MatchExact MatchMode = parser.MatchExact
)

// DefaultExtension is the file extension of packaged documents.
const DefaultExtension = ".FCStd"

// Options configures a corpus scan.
type Options struct {
	// Match specifies the match mode (literal, pattern, exact).
	Match MatchMode
	// Extension selects candidate files. Compared case-sensitively.
	// If empty, defaults to DefaultExtension.
	Extension string
	// Workers is the number of documents loaded concurrently.
	// Values below 2 scan sequentially. Output order never depends on it.
	Workers int
	// CacheSize is the number of parsed documents kept between scans by the
	// same Scanner. Zero disables caching.
	CacheSize int
}

// DefaultOptions returns default scan options.
func DefaultOptions() Options {
	return Options{
		Match:     MatchLiteral,
		Extension: DefaultExtension,
		Workers:   1,
	}
}

// FileExtension returns the candidate file extension.
func (o Options) FileExtension() string {
	if o.Extension == "" {
		return DefaultExtension
	}
	return o.Extension
}

// MatchModeOrDefault returns the configured match mode, literal if unset.
func (o Options) MatchModeOrDefault() MatchMode {
	if o.Match == "" {
		return MatchLiteral
	}
	return o.Match
}

// ParseMatchMode converts a flag or config value to a MatchMode.
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(s) {
	case MatchLiteral, MatchPattern, MatchExact:
		return MatchMode(s), nil
	default:
		return "", &InvalidOptionError{Option: "match", Value: s, Allowed: "literal, pattern, or exact"}
	}
}
