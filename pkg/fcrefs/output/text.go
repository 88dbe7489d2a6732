// Package output renders scan results for people and machines.
package output

import (
	"fmt"
	"io"

	"github.com/ukaji3/fcrefs-go/pkg/fcrefs/models"
)

// Summary returns the banner line for a result:
// "No references to X found." or "N reference(s) to X found:".
func Summary(result *models.ScanResult) string {
	n := len(result.Matches)
	if n == 0 {
		return fmt.Sprintf("No references to %s found.", result.Reference)
	}
	noun := "references"
	if n == 1 {
		noun = "reference"
	}
	return fmt.Sprintf("%d %s to %s found:", n, noun, result.Reference)
}

// WriteText writes the banner followed by one match per line.
func WriteText(w io.Writer, result *models.ScanResult) error {
	if _, err := fmt.Fprintln(w, Summary(result)); err != nil {
		return err
	}
	for _, m := range result.Matches {
		if _, err := fmt.Fprintln(w, m.String()); err != nil {
			return err
		}
	}
	return nil
}
