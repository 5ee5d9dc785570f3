// Package connectivity reconstructs electrical topology from schematic
// geometry. Wires arrive as bare polylines, labels as floating text, and pin
// positions as estimates, so every match here is tolerance-based rather than
// exact. The pipeline is: split polylines into segments, merge touching
// segments into groups (union-find), name groups from nearby labels,
// estimate pin positions, and resolve pins onto nets. The result populates a
// circuit.Graph for downstream rule checks.
package connectivity

// Matching tolerances, in millimeters. These are part of the engine's public
// contract: downstream fixtures are tuned against these exact values, so
// they are package variables rather than inlined literals. All comparisons
// use strict less-than.
var (
	// IntersectionTolerance is the endpoint-to-endpoint distance under
	// which two wire segments are considered electrically joined.
	IntersectionTolerance = 1.0

	// PinToWireTolerance is the distance under which an estimated pin or a
	// label is matched to a wire segment. It is deliberately generous:
	// pin positions are themselves grid-heuristic estimates.
	PinToWireTolerance = 15.0
)
