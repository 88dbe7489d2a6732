package parser

import (
	"reflect"
	"testing"

	"github.com/ukaji3/fcrefs-go/internal/fcstdtest"
	"github.com/ukaji3/fcrefs-go/pkg/fcrefs/models"
)

// parseProperty parses a single <Property> element.
func parseProperty(t *testing.T, markup string) *models.Node {
	t.Helper()
	node, err := ParseDocumentXML([]byte(markup))
	if err != nil {
		t.Fatalf("ParseDocumentXML failed: %v", err)
	}
	return node
}

func literal(t *testing.T, ref models.Reference) Matcher {
	t.Helper()
	m, err := NewMatcher(ref, MatchLiteral)
	if err != nil {
		t.Fatalf("NewMatcher failed: %v", err)
	}
	return m
}

func TestClassifyProperty(t *testing.T) {
	tests := []struct {
		name     string
		expected PropertyKind
	}{
		{"cells", KindCells},
		{"ExpressionEngine", KindExpressionEngine},
		{"Cells", KindOther},
		{"expressionengine", KindOther},
		{"Label", KindOther},
		{"", KindOther},
	}

	for _, tt := range tests {
		if result := ClassifyProperty(tt.name); result != tt.expected {
			t.Errorf("ClassifyProperty(%q) = %v, expected %v", tt.name, result, tt.expected)
		}
	}
}

func TestPropertyLayouts(t *testing.T) {
	tests := []struct {
		kind     PropertyKind
		expected PropertyLayout
	}{
		{KindCells, PropertyLayout{"Cells", "Cell", "content", "address"}},
		{KindExpressionEngine, PropertyLayout{"ExpressionEngine", "Expression", "expression", "path"}},
	}

	for _, tt := range tests {
		if result := PropertyLayouts[tt.kind]; result != tt.expected {
			t.Errorf("PropertyLayouts[%v] = %+v, expected %+v", tt.kind, result, tt.expected)
		}
	}
	if _, ok := PropertyLayouts[KindOther]; ok {
		t.Error("KindOther must have no layout")
	}
}

func TestScanProperty(t *testing.T) {
	ref := models.NewReference("Main", "Spreadsheet", "Value")

	tests := []struct {
		name     string
		markup   string
		expected []string
	}{
		{
			name:     "cell",
			markup:   fcstdtest.Cells("A1", "Value", "B1", "=Main#Spreadsheet.Value"),
			expected: []string{"B1"},
		},
		{
			name:     "expression",
			markup:   fcstdtest.Expressions("Radius", "Main#Spreadsheet.Value", "Height", "10 mm"),
			expected: []string{"Radius"},
		},
		{
			name:     "document order without dedup",
			markup:   fcstdtest.Cells("C3", "=Main#Spreadsheet.Value", "A1", "=Main#Spreadsheet.Value * 2", "C3", "=Main#Spreadsheet.Value"),
			expected: []string{"C3", "A1", "C3"},
		},
		{
			name:     "no match",
			markup:   fcstdtest.Cells("A1", "=Other#Spreadsheet.Value"),
			expected: nil,
		},
		{
			name:     "other property ignores nested content",
			markup:   `<Property name="Label"><Cells><Cell address="A1" content="=Main#Spreadsheet.Value"/></Cells></Property>`,
			expected: nil,
		},
		{
			name:     "cells without container",
			markup:   `<Property name="cells" type="Spreadsheet::PropertySheet"/>`,
			expected: nil,
		},
		{
			name:     "expression leaves ignored under cells",
			markup:   `<Property name="cells"><Cells><Expression path="A1" expression="Main#Spreadsheet.Value"/></Cells></Property>`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		prop := parseProperty(t, tt.markup)
		result := ScanProperty(prop, literal(t, ref))
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("%s: ScanProperty = %v, expected %v", tt.name, result, tt.expected)
		}
	}
}

func TestScanPropertySubstringCollision(t *testing.T) {
	ref := models.NewReference("Main", "Sheet", "Value")
	prop := parseProperty(t, fcstdtest.Cells("A1", "=Main#Sheet.Value2"))

	if result := ScanProperty(prop, literal(t, ref)); !reflect.DeepEqual(result, []string{"A1"}) {
		t.Errorf("literal: ScanProperty = %v, expected [A1]", result)
	}

	exact, err := NewMatcher(ref, MatchExact)
	if err != nil {
		t.Fatal(err)
	}
	if result := ScanProperty(prop, exact); len(result) != 0 {
		t.Errorf("exact: ScanProperty = %v, expected none", result)
	}
}
