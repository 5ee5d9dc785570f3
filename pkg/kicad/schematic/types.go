// Package schematic provides parsing for KiCad schematic files (.kicad_sch),
// extracting the elements connectivity analysis needs: symbol instances,
// library pin lists, wires, junctions, and net labels.
package schematic

import (
	"strings"

	"github.com/OpenTraceLab/OpenTraceDRC/pkg/kicad/sexp"
)

// Re-export shared types from sexp package for convenience
type Position = sexp.Position
type Angle = sexp.Angle
type UUID = sexp.UUID
type Property = sexp.Property

// Schematic represents a parsed KiCad schematic file
type Schematic struct {
	Version      int           // File format version
	Generator    string        // Generator info (e.g., "eeschema")
	GeneratorVer string        // Generator version
	UUID         UUID          // Schematic UUID
	Paper        string        // Paper size (e.g., "A4")
	LibSymbols   []LibSymbol   // Embedded library symbols
	Symbols      []Symbol      // Symbol instances on the schematic
	Wires        []Wire        // Wire connections
	Junctions    []Junction    // Wire junctions
	NoConnects   []NoConnect   // No-connect markers
	Labels       []Label       // Local labels
	GlobalLabels []GlobalLabel // Global labels
	HierLabels   []HierLabel   // Hierarchical labels
}

// LibSymbol represents an embedded library symbol definition. Only the pin
// table is retained; graphics are irrelevant to connectivity.
type LibSymbol struct {
	Name string // Symbol name (e.g., "Device:R")
	Pins []Pin  // Pin definitions, across all units
}

// Pin represents a symbol pin definition
type Pin struct {
	Type     string   // Electrical type (input, output, passive, power_in, ...)
	Position Position // Pin position in symbol coordinates
	Angle    Angle    // Pin angle (0, 90, 180, 270)
	Name     string   // Pin name
	Number   string   // Pin number
	Hide     bool     // Hidden pin
}

// Symbol represents a symbol instance placed on the schematic
type Symbol struct {
	LibID      string     // Library identifier (e.g., "Device:R")
	Position   Position   // Position on schematic
	Angle      Angle      // Rotation angle
	Unit       int        // Unit number (for multi-unit symbols)
	UUID       UUID       // Instance UUID
	Properties []Property // Instance properties (Reference, Value, etc.)
}

// Property returns the value of the named instance property, or ""
func (s *Symbol) Property(key string) string {
	for _, p := range s.Properties {
		if p.Key == key {
			return p.Value
		}
	}
	return ""
}

// Reference returns the reference designator of the instance
func (s *Symbol) Reference() string {
	return s.Property("Reference")
}

// Value returns the value/part-number property of the instance
func (s *Symbol) Value() string {
	return s.Property("Value")
}

// IsPowerSymbol reports whether the instance is a virtual power symbol
func (s *Symbol) IsPowerSymbol() bool {
	return strings.HasPrefix(s.LibID, "power:") ||
		strings.HasPrefix(s.Reference(), "#PWR")
}

// Wire represents a wire connection polyline
type Wire struct {
	Points []Position // Wire points (at least 2)
	UUID   UUID       // Wire UUID
}

// Junction represents a wire junction
type Junction struct {
	Position Position // Junction position
	UUID     UUID     // Junction UUID
}

// NoConnect represents a no-connect marker
type NoConnect struct {
	Position Position // Marker position
	UUID     UUID     // Marker UUID
}

// Label represents a local wire label
type Label struct {
	Text     string   // Label text
	Position Position // Label position
	Angle    Angle    // Label rotation
	UUID     UUID     // Label UUID
}

// GlobalLabel represents a global label (visible across sheets)
type GlobalLabel struct {
	Text     string   // Label text
	Shape    string   // Label shape (input, output, bidirectional, etc.)
	Position Position // Label position
	Angle    Angle    // Label rotation
	UUID     UUID     // Label UUID
}

// HierLabel represents a hierarchical label (connects to sheet pins)
type HierLabel struct {
	Text     string   // Label text
	Shape    string   // Label shape
	Position Position // Label position
	Angle    Angle    // Label rotation
	UUID     UUID     // Label UUID
}

// GetSymbol returns a symbol by reference designator
func (s *Schematic) GetSymbol(ref string) *Symbol {
	for i := range s.Symbols {
		if s.Symbols[i].Reference() == ref {
			return &s.Symbols[i]
		}
	}
	return nil
}

// GetLibSymbol returns the embedded library symbol with the given name
func (s *Schematic) GetLibSymbol(name string) *LibSymbol {
	for i := range s.LibSymbols {
		if s.LibSymbols[i].Name == name {
			return &s.LibSymbols[i]
		}
	}
	return nil
}

// GetAllReferences returns all non-empty reference designators
func (s *Schematic) GetAllReferences() []string {
	var refs []string
	for i := range s.Symbols {
		if ref := s.Symbols[i].Reference(); ref != "" {
			refs = append(refs, ref)
		}
	}
	return refs
}

// GetLabels returns all distinct label names (local + global + hierarchical)
func (s *Schematic) GetLabels() []string {
	seen := make(map[string]bool)
	var labels []string

	add := func(text string) {
		if !seen[text] {
			seen[text] = true
			labels = append(labels, text)
		}
	}
	for _, l := range s.Labels {
		add(l.Text)
	}
	for _, l := range s.GlobalLabels {
		add(l.Text)
	}
	for _, l := range s.HierLabels {
		add(l.Text)
	}

	return labels
}

// GetBoundingBox calculates the bounding box of all schematic elements
func (s *Schematic) GetBoundingBox() sexp.BoundingBox {
	bbox := sexp.NewBoundingBox()

	for _, wire := range s.Wires {
		for _, pt := range wire.Points {
			bbox.Expand(pt)
		}
	}
	for _, sym := range s.Symbols {
		bbox.Expand(sym.Position)
	}
	for _, label := range s.Labels {
		bbox.Expand(label.Position)
	}
	for _, label := range s.GlobalLabels {
		bbox.Expand(label.Position)
	}
	for _, label := range s.HierLabels {
		bbox.Expand(label.Position)
	}
	for _, junc := range s.Junctions {
		bbox.Expand(junc.Position)
	}
	for _, nc := range s.NoConnects {
		bbox.Expand(nc.Position)
	}

	return bbox
}
