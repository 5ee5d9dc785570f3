// Package circuit models a schematic as a directed graph of components and
// nets. Nodes are either components or nets; edges are pin connections from
// a component to the net its pin resolved to. The graph is built once per
// analysis pass and then queried; there is no deletion API.
package circuit

import (
	"strings"

	"github.com/OpenTraceLab/OpenTraceDRC/pkg/kicad/sexp"
)

// Position is the shared millimeter coordinate type
type Position = sexp.Position

// Pin describes one pin of a component
type Pin struct {
	Number         string // Pin number as printed on the symbol ("1", "A7", ...)
	Name           string // Pin name, if the symbol provides one
	ElectricalType string // input, output, passive, power_in, ...
}

// Component represents a schematic component or a virtual power symbol
type Component struct {
	Reference string    // Reference designator (U1, C3, ...)
	Value     string    // Value or part number (10k, LM7805, ...)
	LibID     string    // Library identifier (Device:R), if known
	Position  *Position // Placement on the schematic; nil when unplaced
	Rotation  float64   // Rotation in degrees
	Pins      []Pin     // Explicit pin list; may be empty
	Virtual   bool      // Power symbol or similar one-pin annotation
}

// RefPrefix returns the letter prefix of a reference designator
// ("C12" -> "C", "U3" -> "U")
func RefPrefix(ref string) string {
	for i, c := range ref {
		if c >= '0' && c <= '9' {
			return ref[:i]
		}
	}
	return ref
}

// IsCapacitor reports whether the reference designator identifies a capacitor
func (c *Component) IsCapacitor() bool {
	return RefPrefix(c.Reference) == "C"
}

// Net represents an electrical net
type Net struct {
	Name         string
	VoltageLevel *float64 // Inferred DC level in volts; nil when unknown
	IsPowerRail  bool
}

// SetVoltage records an inferred DC voltage level on the net
func (n *Net) SetVoltage(v float64) {
	n.VoltageLevel = &v
	n.IsPowerRail = true
}

// PinConnection associates one component pin with one net. A pin may carry
// more than one connection when wire-based and label-based resolution both
// match; consumers must treat the pin-to-net relation as a set.
type PinConnection struct {
	ComponentRef string
	PinNumber    string
	NetName      string
}

// NodeKind discriminates the two node variants of the circuit graph
type NodeKind int

const (
	NodeComponent NodeKind = iota
	NodeNet
)

// Node is the tagged union of graph node payloads. Exactly one of Component
// and Net is non-nil, matching Kind.
type Node struct {
	Kind      NodeKind
	Component *Component
	Net       *Net
}

// Label returns the display form of the node: the reference designator for
// components, the bracketed net name for nets.
func (n Node) Label() string {
	switch n.Kind {
	case NodeComponent:
		return n.Component.Reference
	case NodeNet:
		return "[" + n.Net.Name + "]"
	}
	return ""
}

// IsGroundName reports whether a net or symbol name denotes ground
func IsGroundName(name string) bool {
	switch strings.ToUpper(name) {
	case "GND", "VSS", "AGND", "DGND":
		return true
	}
	return false
}
