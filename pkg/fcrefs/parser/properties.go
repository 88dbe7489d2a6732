package parser

import "github.com/ukaji3/fcrefs-go/pkg/fcrefs/models"

// PropertyKind classifies a Property element by whether it can carry references.
type PropertyKind int

const (
	// KindOther is any property that never carries references.
	KindOther PropertyKind = iota
	// KindCells is a spreadsheet cell table (Property name="cells").
	KindCells
	// KindExpressionEngine is an expression table (Property name="ExpressionEngine").
	KindExpressionEngine
)

// String returns the property name the kind is recognised by.
func (k PropertyKind) String() string {
	switch k {
	case KindCells:
		return "cells"
	case KindExpressionEngine:
		return "ExpressionEngine"
	default:
		return "other"
	}
}

// PropertyLayout names the elements and attributes a reference-bearing
// property is made of.
//
//	<Property name="cells" type="Spreadsheet::PropertySheet">
//	    <Cells Count="4" xlink="1">
//	        <Cell address="B1" content="=Main#Spreadsheet.Value" alias="Value1" />
//	    </Cells>
//	</Property>
//	<Property name="ExpressionEngine" type="App::PropertyExpressionEngine">
//	    <ExpressionEngine count="2" xlink="1">
//	        <Expression path="Radius" expression="Main#Spreadsheet.Value"/>
//	    </ExpressionEngine>
//	</Property>
type PropertyLayout struct {
	// Container is the element nested directly under Property.
	Container string
	// Leaf is the repeated element inside Container.
	Leaf string
	// ContentAttr holds the text that may contain a reference.
	ContentAttr string
	// LocationAttr identifies the leaf within the property.
	LocationAttr string
}

// PropertyLayouts maps each reference-bearing kind to its layout.
var PropertyLayouts = map[PropertyKind]PropertyLayout{
	KindCells: {
		Container:    "Cells",
		Leaf:         "Cell",
		ContentAttr:  "content",
		LocationAttr: "address",
	},
	KindExpressionEngine: {
		Container:    "ExpressionEngine",
		Leaf:         "Expression",
		ContentAttr:  "expression",
		LocationAttr: "path",
	},
}

// ClassifyProperty returns the kind for a Property name attribute.
// Only exact names are recognised.
func ClassifyProperty(name string) PropertyKind {
	switch name {
	case "cells":
		return KindCells
	case "ExpressionEngine":
		return KindExpressionEngine
	default:
		return KindOther
	}
}

// Leaf is one cell or expression of a reference-bearing property.
type Leaf struct {
	Location string
	Content  string
}

// PropertyLeaves returns the leaves of a reference-bearing Property element
// in document order, and its kind. KindOther properties have no leaves.
func PropertyLeaves(prop *models.Node) (PropertyKind, []Leaf) {
	name, _ := prop.Attr("name")
	kind := ClassifyProperty(name)
	layout, ok := PropertyLayouts[kind]
	if !ok {
		return kind, nil
	}

	container := prop.Child(layout.Container)
	if container == nil {
		return kind, nil
	}

	var leaves []Leaf
	for _, el := range container.ChildrenNamed(layout.Leaf) {
		content, _ := el.Attr(layout.ContentAttr)
		location, _ := el.Attr(layout.LocationAttr)
		leaves = append(leaves, Leaf{Location: location, Content: content})
	}
	return kind, leaves
}

// ScanProperty returns the locations of every leaf in prop whose content
// uses the reference m matches. Order follows the document; duplicates are kept.
func ScanProperty(prop *models.Node, m Matcher) []string {
	_, leaves := PropertyLeaves(prop)

	var locations []string
	for _, leaf := range leaves {
		if m.Matches(leaf.Content) {
			locations = append(locations, leaf.Location)
		}
	}
	return locations
}
