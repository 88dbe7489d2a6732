package models

// Node is one element of a parsed Document.xml tree.
type Node struct {
	// Name is the local element name.
	Name string
	// Attrs maps local attribute names to values.
	Attrs map[string]string
	// Children holds child elements in document order.
	Children []*Node
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	v, ok := n.Attrs[name]
	return v, ok
}

// Child returns the first child element with the given name, or nil.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns the direct children with the given name.
func (n *Node) ChildrenNamed(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// NamedDocument pairs a parsed document with the label used in matches.
type NamedDocument struct {
	// Label is usually the archive file name.
	Label string
	// Root is the root element of Document.xml.
	Root *Node
}
