// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package xmldom

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/playbymail/oldworldimport/cerrs"
)

// Node is one element in the parsed tree. Attrs and Text are the raw
// strings from the source document; callers use the accessor methods
// below to convert and validate them.
type Node struct {
	Tag      string
	Attrs    map[string]string
	Children []*Node
	Text     string
	Path     string // XPath-like location, e.g. "/Root[0]/Player[2]/Stats[0]" (0-based)
}

// Document is the parsed tree plus the string it was built from.
type Document struct {
	source string
	Root   *Node
}

// Parse decodes src into a read-only node tree. src must already be
// valid UTF-8 — the archive extractor (spec §4.1) guarantees that
// before this is ever called.
func Parse(src string) (*Document, error) {
	dec := xml.NewDecoder(strings.NewReader(src))
	var stack []*Node
	var root *Node
	counts := []map[string]int{{}}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("%w: %v", cerrs.ErrMalformedXML, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			parent := (*Node)(nil)
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}
			idx := counts[len(counts)-1][t.Name.Local]
			counts[len(counts)-1][t.Name.Local] = idx + 1

			path := fmt.Sprintf("%s[%d]", t.Name.Local, idx)
			if parent != nil {
				path = parent.Path + "/" + path
			} else {
				path = "/" + path
			}

			n := &Node{
				Tag:   t.Name.Local,
				Attrs: make(map[string]string, len(t.Attr)),
				Path:  path,
			}
			for _, a := range t.Attr {
				n.Attrs[a.Name.Local] = a.Value
			}
			if parent != nil {
				parent.Children = append(parent.Children, n)
			} else {
				root = n
			}
			stack = append(stack, n)
			counts = append(counts, map[string]int{})
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: unbalanced end element %q", cerrs.ErrMalformedXML, t.Name.Local)
			}
			stack = stack[:len(stack)-1]
			counts = counts[:len(counts)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}
	if root == nil {
		return nil, cerrs.ErrEmptyDocument
	}
	return &Document{source: src, Root: root}, nil
}

// Source returns the raw document text the tree was parsed from.
func (d *Document) Source() string { return d.source }
