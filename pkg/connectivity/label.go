package connectivity

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceDRC/pkg/circuit"
)

// LabelKind distinguishes the three KiCad label flavors, which resolve to
// net names differently.
type LabelKind int

const (
	LabelGlobal LabelKind = iota
	LabelLocal
	LabelHierarchical
)

// Label is a net label: floating text that names whatever wire group it
// sits on or near.
type Label struct {
	Text     string
	Position circuit.Position
	Kind     LabelKind
}

// NetName returns the resolved net name for the label. Global labels name
// the net verbatim; local labels are sheet-scoped and wrapped; hierarchical
// labels are prefixed.
func (l Label) NetName() string {
	switch l.Kind {
	case LabelLocal:
		return "Net-(" + l.Text + ")"
	case LabelHierarchical:
		return "Hier-" + l.Text
	}
	return l.Text
}

// AssignNetNames maps each segment group to a net name. A label names the
// group of the first segment it is incident to (within tol of the segment
// body or either endpoint); labels are processed in list order, so a later
// label overwrites an earlier assignment to the same group — last label
// wins, which mirrors how duplicate labels behave in the source tools.
// Groups no label reaches get a synthetic "Net-<group>" name.
func AssignNetNames(segments []Segment, groups []int, labels []Label, tol float64) map[int]string {
	names := make(map[int]string)

	for _, label := range labels {
		for si, seg := range segments {
			if labelIncident(label, seg, tol) {
				names[groups[si]] = label.NetName()
				break
			}
		}
	}

	for _, group := range groups {
		if _, ok := names[group]; !ok {
			names[group] = fmt.Sprintf("Net-%d", group)
		}
	}

	return names
}

// labelIncident reports whether the label sits on or near the segment
func labelIncident(label Label, seg Segment, tol float64) bool {
	if pointSegmentDistance(label.Position, seg.Start, seg.End) < tol {
		return true
	}
	return label.Position.DistanceTo(seg.Start) < tol ||
		label.Position.DistanceTo(seg.End) < tol
}
