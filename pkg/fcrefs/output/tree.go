package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ddddddO/gtree"
	"github.com/ukaji3/fcrefs-go/pkg/fcrefs/models"
	"github.com/ukaji3/fcrefs-go/pkg/fcrefs/parser"
)

// WriteTree prints the objects of a document together with their
// reference-bearing properties and leaves. Unless all is set, only leaves
// whose content holds a cross-document reference ('#') are shown, and
// objects without such leaves are left out.
func WriteTree(w io.Writer, label string, root *models.Node, all bool) error {
	top := gtree.NewRoot(label)
	shown := 0

	for _, object := range parser.Objects(root) {
		objectName, _ := object.Attr("name")
		var objectNode *gtree.Node

		for _, prop := range object.Child("Properties").ChildrenNamed("Property") {
			kind, leaves := parser.PropertyLeaves(prop)
			if kind == parser.KindOther {
				continue
			}

			var propNode *gtree.Node
			for _, leaf := range leaves {
				if !all && !strings.Contains(leaf.Content, "#") {
					continue
				}
				if objectNode == nil {
					objectNode = top.Add(objectName)
				}
				if propNode == nil {
					propNode = objectNode.Add(kind.String())
				}
				propNode.Add(fmt.Sprintf("%s: %s", leaf.Location, leaf.Content))
				shown++
			}
		}
	}

	if shown == 0 {
		_, err := fmt.Fprintf(w, "%s: no references\n", label)
		return err
	}
	return gtree.OutputProgrammably(w, top)
}
