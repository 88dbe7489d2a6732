// Package fcstdtest builds FCStd archives for tests.
package fcstdtest

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Object describes one <Object> of a generated Document.xml.
type Object struct {
	Name       string
	Properties []string
	// NoProperties omits the Properties section.
	NoProperties bool
}

// Cells renders a "cells" property from address/content pairs.
func Cells(pairs ...string) string {
	var b strings.Builder
	b.WriteString(`<Property name="cells" type="Spreadsheet::PropertySheet" status="67108864">`)
	fmt.Fprintf(&b, `<Cells Count="%d" xlink="1">`, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		fmt.Fprintf(&b, `<Cell address="%s" content="%s"/>`, pairs[i], escape(pairs[i+1]))
	}
	b.WriteString(`</Cells></Property>`)
	return b.String()
}

// Expressions renders an "ExpressionEngine" property from path/expression pairs.
func Expressions(pairs ...string) string {
	var b strings.Builder
	b.WriteString(`<Property name="ExpressionEngine" type="App::PropertyExpressionEngine" status="67108864">`)
	fmt.Fprintf(&b, `<ExpressionEngine count="%d" xlink="1">`, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		fmt.Fprintf(&b, `<Expression path="%s" expression="%s"/>`, pairs[i], escape(pairs[i+1]))
	}
	b.WriteString(`</ExpressionEngine></Property>`)
	return b.String()
}

// Plain renders a property that never carries references.
func Plain(name, value string) string {
	return fmt.Sprintf(`<Property name="%s" type="App::PropertyString"><String value="%s"/></Property>`, name, escape(value))
}

// DocumentXML renders a Document.xml holding the given objects.
func DocumentXML(objects ...Object) string {
	var b strings.Builder
	b.WriteString(`<?xml version='1.0' encoding='utf-8'?>` + "\n")
	b.WriteString(`<Document SchemaVersion="4" ProgramVersion="0.21" FileVersion="1">`)
	fmt.Fprintf(&b, `<Objects Count="%d">`, len(objects))
	for _, o := range objects {
		fmt.Fprintf(&b, `<Object type="Spreadsheet::Sheet" name="%s"/>`, o.Name)
	}
	b.WriteString(`</Objects>`)
	fmt.Fprintf(&b, `<ObjectData Count="%d">`, len(objects))
	for _, o := range objects {
		fmt.Fprintf(&b, `<Object name="%s">`, o.Name)
		if !o.NoProperties {
			fmt.Fprintf(&b, `<Properties Count="%d">`, len(o.Properties))
			for _, p := range o.Properties {
				b.WriteString(p)
			}
			b.WriteString(`</Properties>`)
		}
		b.WriteString(`</Object>`)
	}
	b.WriteString(`</ObjectData></Document>`)
	return b.String()
}

// WriteArchive writes a zip archive at dir/name with the given members and
// returns its path.
func WriteArchive(t testing.TB, dir, name string, members map[string]string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, ArchiveBytes(t, members), 0o644); err != nil {
		t.Fatalf("write archive %s: %v", path, err)
	}
	return path
}

// ArchiveBytes returns a zip archive holding members, for in-memory loading.
func ArchiveBytes(t testing.TB, members map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for member, content := range members {
		w, err := zw.Create(member)
		if err != nil {
			t.Fatalf("create member %s: %v", member, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write member %s: %v", member, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}
	return buf.Bytes()
}

// WriteDocument writes an FCStd archive whose Document.xml holds objects.
func WriteDocument(t testing.TB, dir, name string, objects ...Object) string {
	t.Helper()
	return WriteArchive(t, dir, name, map[string]string{
		"Document.xml":    DocumentXML(objects...),
		"GuiDocument.xml": `<?xml version='1.0' encoding='utf-8'?><Document/>`,
	})
}

func escape(s string) string {
	r := strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
