// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package xmldom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/playbymail/oldworldimport/cerrs"
)

// LocatedError names the location (spec §4.2, §7: "entity family,
// source id, field name, XPath-like hint") of a format error.
type LocatedError struct {
	Path  string
	Field string
	Err   error
}

func (e *LocatedError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Field, e.Err)
}

func (e *LocatedError) Unwrap() error { return e.Err }

// Attr returns the raw attribute value and whether it was present.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

// RequiredAttr returns a required attribute's raw value, or a located
// error if it is absent (spec §4.2).
func (n *Node) RequiredAttr(name string) (string, error) {
	v, ok := n.Attrs[name]
	if !ok {
		return "", &LocatedError{Path: n.Path, Field: name, Err: cerrs.ErrMissingAttribute}
	}
	return v, nil
}

// RequiredIntAttr parses a required integer attribute. A present but
// unparseable value is an error, matching spec §4.4's attribute
// precedence rule.
func (n *Node) RequiredIntAttr(name string) (int, error) {
	v, err := n.RequiredAttr(name)
	if err != nil {
		return 0, err
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, &LocatedError{Path: n.Path, Field: name, Err: cerrs.ErrNotParseableInt}
	}
	return i, nil
}

// OptionalIntAttr returns (nil, nil) when the attribute is absent, and
// an error only when it is present but not parseable as an integer
// (spec §4.4).
func (n *Node) OptionalIntAttr(name string) (*int, error) {
	v, ok := n.Attrs[name]
	if !ok || v == "" {
		return nil, nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return nil, &LocatedError{Path: n.Path, Field: name, Err: cerrs.ErrNotParseableInt}
	}
	return &i, nil
}

// OptionalAttr returns the attribute value, or "" with ok=false when absent.
func (n *Node) OptionalAttr(name string) (string, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

// OptionalFloatAttr mirrors OptionalIntAttr for floating-point fields
// (e.g. MapAspectRatio).
func (n *Node) OptionalFloatAttr(name string) (*float64, error) {
	v, ok := n.Attrs[name]
	if !ok || v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return nil, &LocatedError{Path: n.Path, Field: name, Err: cerrs.ErrNotParseableFloat}
	}
	return &f, nil
}

// FirstChild returns the first child element with the given tag, or
// nil if there is none.
func (n *Node) FirstChild(tag string) *Node {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// ChildrenByTag returns every direct child element with the given tag.
func (n *Node) ChildrenByTag(tag string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// RequiredChildText returns the trimmed text of the first child with
// the given tag, or a located error if no such child exists (spec §4.2).
func (n *Node) RequiredChildText(tag string) (string, error) {
	c := n.FirstChild(tag)
	if c == nil {
		return "", &LocatedError{Path: n.Path, Field: tag, Err: cerrs.ErrMissingChildText}
	}
	return strings.TrimSpace(c.Text), nil
}

// OptionalChildText returns the trimmed text of the first child with
// the given tag, and false if no such child exists.
func (n *Node) OptionalChildText(tag string) (string, bool) {
	c := n.FirstChild(tag)
	if c == nil {
		return "", false
	}
	return strings.TrimSpace(c.Text), true
}

// TrimmedText returns the node's own character data, trimmed.
func (n *Node) TrimmedText() string {
	return strings.TrimSpace(n.Text)
}
