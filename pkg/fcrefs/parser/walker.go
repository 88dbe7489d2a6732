package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/fcrefs-go/pkg/fcrefs/models"
)

// ErrMissingProperties indicates an Object element without a Properties section.
var ErrMissingProperties = errors.New("object has no Properties section")

// FindMatches walks every object and property of a parsed document and
// returns the uses of the reference m matches, labelled with label.
//
// Matches are ordered by object, then property, then leaf. An object without
// Properties aborts the walk so no partial result is returned.
func FindMatches(label string, root *models.Node, m Matcher) ([]models.Match, error) {
	var matches []models.Match

	for _, object := range Objects(root) {
		objectName, _ := object.Attr("name")

		properties := object.Child("Properties")
		if properties == nil {
			return nil, fmt.Errorf("%w: object %q", ErrMissingProperties, objectName)
		}

		for _, prop := range properties.ChildrenNamed("Property") {
			propertyName, _ := prop.Attr("name")
			for _, location := range ScanProperty(prop, m) {
				matches = append(matches, models.Match{
					Document: label,
					Object:   objectName,
					Property: propertyName,
					Location: location,
				})
			}
		}
	}

	return matches, nil
}

// Objects returns the Object elements under ObjectData in document order.
func Objects(root *models.Node) []*models.Node {
	return root.Child("ObjectData").ChildrenNamed("Object")
}
