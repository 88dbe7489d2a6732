package models

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

func TestReferenceString(t *testing.T) {
	ref := NewReference("Main", "Spreadsheet", "Value")
	if result := ref.String(); result != "Main#Spreadsheet.Value" {
		t.Errorf("String() = %q, expected %q", result, "Main#Spreadsheet.Value")
	}
}

func TestMatchString(t *testing.T) {
	m := Match{Document: "Part.FCStd", Object: "Spreadsheet", Property: "cells", Location: "B1"}
	if result := m.String(); result != "Part.FCStd Spreadsheet.B1 (cells)" {
		t.Errorf("String() = %q, expected %q", result, "Part.FCStd Spreadsheet.B1 (cells)")
	}
}

func TestParseReference(t *testing.T) {
	tests := []struct {
		input    string
		expected Reference
		valid    bool
	}{
		{"Main#Spreadsheet.Value", Reference{"Main", "Spreadsheet", "Value"}, true},
		{"Main#Sheet.Value.Sub", Reference{"Main", "Sheet", "Value.Sub"}, true},
		{"<<My Doc>>#<<Params>>.Width", Reference{"<<My Doc>>", "<<Params>>", "Width"}, true},
		{"Main.v2#Sheet.Value", Reference{"Main.v2", "Sheet", "Value"}, true},
		{"MainSheet.Value", Reference{}, false},
		{"Main#SheetValue", Reference{}, false},
		{"#Sheet.Value", Reference{}, false},
		{"Main#.Value", Reference{}, false},
		{"Main#Sheet.", Reference{}, false},
		{"", Reference{}, false},
	}

	for _, tt := range tests {
		result, err := ParseReference(tt.input)
		if tt.valid {
			if err != nil {
				t.Errorf("ParseReference(%q) failed: %v", tt.input, err)
				continue
			}
			if result != tt.expected {
				t.Errorf("ParseReference(%q) = %+v, expected %+v", tt.input, result, tt.expected)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidReference) {
			t.Errorf("ParseReference(%q) error = %v, expected ErrInvalidReference", tt.input, err)
		}
	}
}

func TestReferenceValidate(t *testing.T) {
	tests := []struct {
		ref   Reference
		valid bool
	}{
		{NewReference("Main", "Spreadsheet", "Value"), true},
		{NewReference("", "", ""), false},
		{NewReference("", "Spreadsheet", "Value"), false},
		{NewReference("Main", "", "Value"), false},
		{NewReference("Main", "Spreadsheet", ""), false},
	}

	for _, tt := range tests {
		err := tt.ref.Validate()
		if tt.valid && err != nil {
			t.Errorf("Validate(%+v) failed: %v", tt.ref, err)
		}
		if !tt.valid && !errors.Is(err, ErrInvalidReference) {
			t.Errorf("Validate(%+v) error = %v, expected ErrInvalidReference", tt.ref, err)
		}
	}
}

func TestParseReferenceInvertsString(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ref := NewReference(
			rapid.StringMatching(`[A-Za-z0-9_ <>.]{1,12}`).Draw(rt, "document"),
			rapid.StringMatching(`[A-Za-z0-9_ <>]{1,12}`).Draw(rt, "object"),
			rapid.StringMatching(`[A-Za-z0-9_.]{1,12}`).Draw(rt, "property"),
		)

		parsed, err := ParseReference(ref.String())
		if err != nil {
			rt.Fatalf("ParseReference(%q) failed: %v", ref.String(), err)
		}
		if parsed != ref {
			rt.Fatalf("ParseReference(%q) = %+v, expected %+v", ref.String(), parsed, ref)
		}
	})
}

func TestNodeHelpersAreNilSafe(t *testing.T) {
	var n *Node
	if n.Child("ObjectData") != nil {
		t.Error("Child on nil node should be nil")
	}
	if len(n.ChildrenNamed("Object")) != 0 {
		t.Error("ChildrenNamed on nil node should be empty")
	}
	if _, ok := n.Attr("name"); ok {
		t.Error("Attr on nil node should report missing")
	}
}
