// Package parser provides FCStd archive loading and reference scanning utilities.
package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/ukaji3/fcrefs-go/pkg/fcrefs/models"
)

// DocumentMember is the archive member holding the document markup.
const DocumentMember = "Document.xml"

var (
	// ErrArchive indicates the file is not a readable zip archive.
	ErrArchive = errors.New("not a valid document archive")
	// ErrMalformedDocument indicates Document.xml is missing or not well-formed.
	ErrMalformedDocument = errors.New("malformed document")
)

// LoadDocument opens an FCStd archive and parses its Document.xml member.
func LoadDocument(path string) (*models.Node, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArchive, err)
	}
	defer r.Close()

	return loadFromReader(&r.Reader)
}

// LoadDocumentFrom parses Document.xml out of an archive held in memory.
func LoadDocumentFrom(ra io.ReaderAt, size int64) (*models.Node, error) {
	r, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArchive, err)
	}
	return loadFromReader(r)
}

func loadFromReader(r *zip.Reader) (*models.Node, error) {
	data, err := readMember(r, DocumentMember)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s not found in archive", ErrMalformedDocument, DocumentMember)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrMalformedDocument, DocumentMember, err)
	}
	return ParseDocumentXML(data)
}

// ParseDocumentXML parses Document.xml content into a Node tree.
func ParseDocumentXML(data []byte) (*models.Node, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("%w: no root element", ErrMalformedDocument)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}

		if se, ok := token.(xml.StartElement); ok {
			root, err := parseElement(decoder, se)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
			}
			if err := expectEOF(decoder); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
			}
			return root, nil
		}
	}
}

// parseElement reads the element opened by start, including all descendants.
func parseElement(decoder *xml.Decoder, start xml.StartElement) (*models.Node, error) {
	node := &models.Node{
		Name:  start.Name.Local,
		Attrs: make(map[string]string, len(start.Attr)),
	}
	for _, attr := range start.Attr {
		node.Attrs[attr.Name.Local] = attr.Value
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("unexpected end of document inside <%s>", node.Name)
			}
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			child, err := parseElement(decoder, t)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)
		case xml.EndElement:
			return node, nil
		}
	}
}

// expectEOF rejects anything but whitespace, comments and processing
// instructions after the root element.
func expectEOF(decoder *xml.Decoder) error {
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := token.(type) {
		case xml.StartElement:
			return fmt.Errorf("unexpected element <%s> after root", t.Name.Local)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return errors.New("unexpected text after root element")
			}
		}
	}
}

// readMember returns the content of one archive member through the fs.FS view
// of the archive; a missing member yields fs.ErrNotExist.
func readMember(r *zip.Reader, name string) ([]byte, error) {
	f, err := r.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
