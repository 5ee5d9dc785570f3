// Package kicadsexp provides a lightweight streaming S-expression parser
// for KiCad files. Unlike general-purpose sexp libraries, this parser can
// handle arbitrarily large files by streaming from an io.Reader.
package kicadsexp

import (
	"io"
	"strings"
)

// Sexp represents an S-expression node: either an atom or a list.
type Sexp interface {
	// IsLeaf returns true if this is an atom (not a list)
	IsLeaf() bool

	// String returns the string representation
	String() string
}

// Symbol represents an atomic symbol (identifier, number, or string content)
type Symbol string

func (s Symbol) IsLeaf() bool   { return true }
func (s Symbol) String() string { return string(s) }

// List represents a parenthesized list of S-expressions
type List struct {
	Items []Sexp
}

func (l *List) IsLeaf() bool { return false }

func (l *List) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, elem := range l.Items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(elem.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Get returns the element at the given index, or nil when out of range
func (l *List) Get(index int) Sexp {
	if index < 0 || index >= len(l.Items) {
		return nil
	}
	return l.Items[index]
}

// Len returns the number of elements in the list
func (l *List) Len() int {
	return len(l.Items)
}

// Parse parses all top-level S-expressions from an io.Reader
func Parse(r io.Reader) ([]Sexp, error) {
	parser := NewParser(r)
	return parser.ParseAll()
}

// ParseString parses S-expressions from a string (convenience function)
func ParseString(s string) ([]Sexp, error) {
	return Parse(strings.NewReader(s))
}
