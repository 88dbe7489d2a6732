package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ukaji3/fcrefs-go/pkg/fcrefs/models"
)

// Match modes accepted by NewMatcher.
const (
	MatchLiteral = "literal"
	MatchPattern = "pattern"
	MatchExact   = "exact"
)

// Matcher tests whether a cell content or expression uses a reference.
type Matcher interface {
	Matches(content string) bool
}

// NewMatcher returns the Matcher for ref under the given mode.
//
// literal: the reference string occurs anywhere in the content.
// pattern: the reference string, unescaped, is compiled as a regular
// expression and searched for. Metacharacters in names change the meaning.
// exact: like literal, but the occurrence must not be directly preceded or
// followed by an identifier character, so Main#Sheet.Value does not match
// Main#Sheet.Value2.
func NewMatcher(ref models.Reference, mode string) (Matcher, error) {
	switch mode {
	case MatchLiteral, "":
		return literalMatcher(ref.String()), nil
	case MatchPattern:
		re, err := regexp.Compile(ref.String())
		if err != nil {
			return nil, fmt.Errorf("reference %s is not a valid pattern: %w", ref, err)
		}
		return patternMatcher{re: re}, nil
	case MatchExact:
		return exactMatcher(ref.String()), nil
	default:
		return nil, fmt.Errorf("invalid match mode: %s (must be literal, pattern, or exact)", mode)
	}
}

type literalMatcher string

func (m literalMatcher) Matches(content string) bool {
	return strings.Contains(content, string(m))
}

type patternMatcher struct {
	re *regexp.Regexp
}

func (m patternMatcher) Matches(content string) bool {
	return m.re.MatchString(content)
}

type exactMatcher string

func (m exactMatcher) Matches(content string) bool {
	needle := string(m)
	if needle == "" {
		return false
	}
	for offset := 0; offset+len(needle) <= len(content); {
		i := strings.Index(content[offset:], needle)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(needle)
		if !isIdentByte(content, start-1) && !isIdentByte(content, end) {
			return true
		}
		offset = start + 1
	}
	return false
}

// isIdentByte reports whether content[i] is an identifier character.
// Out-of-range indexes count as boundaries.
func isIdentByte(content string, i int) bool {
	if i < 0 || i >= len(content) {
		return false
	}
	c := content[i]
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}
