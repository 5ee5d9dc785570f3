// Package netlist parses SPICE-style netlist files. A netlist carries
// explicit pin-to-net connectivity, so it bypasses the geometric
// connectivity pipeline entirely: the loader populates a circuit graph
// directly from the element cards.
package netlist

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// netlistLexer defines the lexical structure: line-oriented element cards,
// * or ; comments, and .directives
var netlistLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `[*;][^\n]*`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Directive", Pattern: `\.[a-zA-Z]+`},
	{Name: "Ident", Pattern: `[A-Za-z0-9_+\-/#]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

// File is the parsed netlist: a sequence of cards separated by newlines
type File struct {
	Cards []*Card `parser:"( @@ | EOL )*"`
}

// Card is one netlist line: either a .directive or an element card.
// For an element card, Name is the component reference and Args are the net
// names followed by the value/part number (when two or more args are
// present, the last one is the value).
type Card struct {
	Directive string   `parser:"( @Directive"`
	Name      string   `parser:"| @Ident )"`
	Args      []string `parser:"@Ident* EOL?"`
}

// IsDirective reports whether the card is a .directive rather than an element
func (c *Card) IsDirective() bool {
	return c.Directive != ""
}

// Nets returns the net names the element connects to, in pin order
func (c *Card) Nets() []string {
	if len(c.Args) >= 2 {
		return c.Args[:len(c.Args)-1]
	}
	return c.Args
}

// Value returns the element's value or part number, if present
func (c *Card) Value() string {
	if len(c.Args) >= 2 {
		return c.Args[len(c.Args)-1]
	}
	return ""
}

// Parser parses netlist files
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser creates a new netlist parser instance
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(netlistLexer),
		participle.Elide("Comment", "Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse parses a netlist from a reader
func (p *Parser) Parse(r io.Reader) (*File, error) {
	file, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return file, nil
}

// ParseString parses a netlist from a string
func (p *Parser) ParseString(input string) (*File, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return file, nil
}

// ParseFile parses a netlist from a file path
func (p *Parser) ParseFile(filename string) (*File, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}
