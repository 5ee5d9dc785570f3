package connectivity

import (
	"github.com/OpenTraceLab/OpenTraceDRC/pkg/circuit"
)

// ResolvePinNets maps every estimated pin position onto net names. Two
// passes run unconditionally and their results are unioned:
//
//  1. Wire-based: a pin resolves through the nearest segment (when that
//     minimum distance is within tolerance) to the segment group's net name.
//  2. Label-based: a pin sitting within tolerance of a label resolves to the
//     label's net directly. This catches power symbols placed on a label
//     with no wire in between.
//
// A pin can therefore resolve to more than one net; consumers must treat the
// pin-to-net relation as a set. Pins with no match within tolerance are
// silently omitted — unknown connectivity, not an error.
func ResolvePinNets(
	components []*circuit.Component,
	pinPositions map[string]map[string]circuit.Position,
	segments []Segment,
	groups []int,
	netNames map[int]string,
	labels []Label,
	tol float64,
) []circuit.PinConnection {
	var conns []circuit.PinConnection
	seen := make(map[circuit.PinConnection]bool)

	add := func(ref, pin, net string) {
		conn := circuit.PinConnection{ComponentRef: ref, PinNumber: pin, NetName: net}
		if !seen[conn] {
			seen[conn] = true
			conns = append(conns, conn)
		}
	}

	// Iterate components in input order and pins in declaration order so the
	// output order is deterministic for a given input.
	forEachPin(components, pinPositions, func(ref, pinNumber string, pos circuit.Position) {
		// Pass 1: nearest wire segment
		best := -1
		bestDist := 0.0
		for si, seg := range segments {
			d := pointSegmentDistance(pos, seg.Start, seg.End)
			if best < 0 || d < bestDist {
				best = si
				bestDist = d
			}
		}
		if best >= 0 && bestDist < tol {
			add(ref, pinNumber, netNames[groups[best]])
		}

		// Pass 2: directly-adjacent labels
		for _, label := range labels {
			if pos.DistanceTo(label.Position) < tol {
				add(ref, pinNumber, label.NetName())
			}
		}
	})

	return conns
}

// forEachPin visits every estimated pin in deterministic order: components
// in slice order, explicit pins in declaration order, then the synthesized
// pin "1" for pinless components.
func forEachPin(
	components []*circuit.Component,
	pinPositions map[string]map[string]circuit.Position,
	visit func(ref, pinNumber string, pos circuit.Position),
) {
	for _, comp := range components {
		pins, ok := pinPositions[comp.Reference]
		if !ok {
			continue
		}
		if len(comp.Pins) == 0 {
			if pos, ok := pins["1"]; ok {
				visit(comp.Reference, "1", pos)
			}
			continue
		}
		for _, pin := range comp.Pins {
			if pos, ok := pins[pin.Number]; ok {
				visit(comp.Reference, pin.Number, pos)
			}
		}
	}
}
