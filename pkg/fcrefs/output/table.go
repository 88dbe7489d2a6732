package output

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/ukaji3/fcrefs-go/pkg/fcrefs/models"
)

var (
	headline = color.New(color.FgHiBlue).SprintFunc()
	warning  = color.New(color.FgYellow).SprintFunc()
)

// RenderTable renders a result as a summary line followed by a table of
// matches and, if any, a table of skipped documents.
func RenderTable(result *models.ScanResult) (string, error) {
	var buf strings.Builder
	fmt.Fprintln(&buf, headline(Summary(result)))

	if len(result.Matches) > 0 {
		table := newTable(&buf)
		table.Header("Document", "Object", "Location", "Property")
		data := make([][]any, len(result.Matches))
		for i, m := range result.Matches {
			data[i] = []any{m.Document, m.Object, m.Location, m.Property}
		}
		if err := table.Bulk(data); err != nil {
			return "", fmt.Errorf("error formatting matches: %v", err)
		}
		if err := table.Render(); err != nil {
			return "", fmt.Errorf("error rendering matches: %v", err)
		}
	}

	if len(result.Skipped) > 0 {
		fmt.Fprintln(&buf, warning(fmt.Sprintf("%d document(s) skipped:", len(result.Skipped))))
		table := newTable(&buf)
		table.Header("Document", "Reason")
		for _, s := range result.Skipped {
			if err := table.Append([]string{s.Document, s.Reason}); err != nil {
				return "", fmt.Errorf("error formatting skipped documents: %v", err)
			}
		}
		if err := table.Render(); err != nil {
			return "", fmt.Errorf("error rendering skipped documents: %v", err)
		}
	}

	return buf.String(), nil
}

func newTable(buf *strings.Builder) *tablewriter.Table {
	return tablewriter.NewTable(buf,
		tablewriter.WithMaxWidth(120),
		tablewriter.WithRowAutoWrap(tw.WrapBreak),
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Settings: tw.Settings{Separators: tw.Separators{BetweenRows: tw.Off}},
		})))
}
