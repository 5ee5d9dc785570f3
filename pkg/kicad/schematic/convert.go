package schematic

import (
	"log"

	"github.com/OpenTraceLab/OpenTraceDRC/pkg/circuit"
	"github.com/OpenTraceLab/OpenTraceDRC/pkg/connectivity"
)

// ToDesign converts a parsed schematic into the connectivity engine's input
// records. Symbol instances become components (power symbols become virtual
// one-pin components), wires become polylines, and the three label flavors
// become kinded labels.
//
// Label order matters downstream: when several labels reach the same wire
// group the last one wins, so locals come first, then hierarchical, then
// global labels — giving global names precedence.
func ToDesign(sch *Schematic) connectivity.Design {
	design := connectivity.Design{}

	for i := range sch.Symbols {
		sym := &sch.Symbols[i]
		ref := sym.Reference()
		if ref == "" {
			log.Printf("schematic: symbol %s has no reference designator, skipping", sym.LibID)
			continue
		}

		pos := circuit.Position{X: sym.Position.X, Y: sym.Position.Y}
		comp := &circuit.Component{
			Reference: ref,
			Value:     sym.Value(),
			LibID:     sym.LibID,
			Position:  &pos,
			Rotation:  float64(sym.Angle),
		}

		if sym.IsPowerSymbol() {
			// Virtual symbols connect through a single implicit pin at
			// their own position; the estimator synthesizes pin "1".
			comp.Virtual = true
		} else if lib := sch.GetLibSymbol(sym.LibID); lib != nil {
			for _, pin := range lib.Pins {
				comp.Pins = append(comp.Pins, circuit.Pin{
					Number:         pin.Number,
					Name:           pin.Name,
					ElectricalType: pin.Type,
				})
			}
		}

		design.Components = append(design.Components, comp)
	}

	for _, wire := range sch.Wires {
		design.Wires = append(design.Wires, connectivity.Wire{Points: wire.Points})
	}

	for _, l := range sch.Labels {
		design.Labels = append(design.Labels, connectivity.Label{
			Text:     l.Text,
			Position: l.Position,
			Kind:     connectivity.LabelLocal,
		})
	}
	for _, l := range sch.HierLabels {
		design.Labels = append(design.Labels, connectivity.Label{
			Text:     l.Text,
			Position: l.Position,
			Kind:     connectivity.LabelHierarchical,
		})
	}
	for _, l := range sch.GlobalLabels {
		design.Labels = append(design.Labels, connectivity.Label{
			Text:     l.Text,
			Position: l.Position,
			Kind:     connectivity.LabelGlobal,
		})
	}

	return design
}
