package connectivity

import (
	"log"

	"github.com/OpenTraceLab/OpenTraceDRC/pkg/circuit"
)

// Pin layout grid. Without the symbol library the true pin geometry is
// unknown, so pins are laid out two per row on a 2.54 mm grid around the
// component origin. Callers must not assume sub-grid accuracy.
const (
	pinGridPitch  = 2.54
	pinGridOffset = 1.27
)

// EstimatePinPositions computes an absolute position for every pin of every
// component. Components with an explicit pin list get grid-estimated
// positions rotated by the component's angle; components with no pin data
// (power symbols, symbols whose pins live only in an external library) get a
// single synthesized pin "1" at the component's own position so they still
// participate in connectivity matching.
func EstimatePinPositions(components []*circuit.Component) map[string]map[string]circuit.Position {
	positions := make(map[string]map[string]circuit.Position, len(components))

	for _, comp := range components {
		if comp.Position == nil {
			log.Printf("connectivity: component %s has no placement, skipping pin estimation", comp.Reference)
			continue
		}

		pins := make(map[string]circuit.Position)

		if len(comp.Pins) == 0 {
			pins["1"] = *comp.Position
			positions[comp.Reference] = pins
			continue
		}

		for idx, pin := range comp.Pins {
			xOff := float64(idx%2)*pinGridPitch - pinGridOffset
			yOff := float64(idx/2)*pinGridPitch - pinGridOffset
			rx, ry := rotateOffset(xOff, yOff, comp.Rotation)
			pins[pin.Number] = circuit.Position{
				X: comp.Position.X + rx,
				Y: comp.Position.Y + ry,
			}
		}
		positions[comp.Reference] = pins
	}

	return positions
}
