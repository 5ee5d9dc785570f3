package connectivity

import (
	"sort"

	"github.com/OpenTraceLab/OpenTraceDRC/pkg/circuit"
)

// Design is the geometric input to one connectivity analysis: everything the
// upstream parser extracted from a single schematic, in millimeter
// coordinates. The engine does not care which file format produced it.
type Design struct {
	Components []*circuit.Component
	Wires      []Wire
	Labels     []Label
}

// Result carries the outcome of one analysis pass. All of it is derived
// fresh per call; nothing is cached across runs.
type Result struct {
	Graph        *circuit.Graph
	Connections  []circuit.PinConnection
	Segments     []Segment
	Groups       []int
	NetNames     map[int]string
	PinPositions map[string]map[string]circuit.Position
}

// PinPosition returns the estimated absolute position of one component pin.
func (r *Result) PinPosition(ref, pin string) (circuit.Position, bool) {
	pins, ok := r.PinPositions[ref]
	if !ok {
		return circuit.Position{}, false
	}
	pos, ok := pins[pin]
	return pos, ok
}

// Build runs the full connectivity pipeline over a design: segment
// decomposition, endpoint grouping, net naming, pin estimation, pin-to-net
// resolution, graph construction, and voltage propagation. The computation
// is synchronous and deterministic; a schematic with no wires still resolves
// through labels, and an empty design yields an empty graph.
func Build(design Design) *Result {
	segments := SplitWires(design.Wires)
	groups := GroupSegments(segments, IntersectionTolerance)
	netNames := AssignNetNames(segments, groups, design.Labels, PinToWireTolerance)
	pinPositions := EstimatePinPositions(design.Components)
	conns := ResolvePinNets(design.Components, pinPositions, segments, groups, netNames, design.Labels, PinToWireTolerance)

	graph := circuit.NewGraph()
	for _, comp := range design.Components {
		graph.AddComponent(comp)
	}

	for _, name := range netNameOrder(netNames, conns) {
		graph.AddNet(&circuit.Net{Name: name}, conns)
	}

	circuit.PropagateVoltages(graph)

	return &Result{
		Graph:        graph,
		Connections:  conns,
		Segments:     segments,
		Groups:       groups,
		NetNames:     netNames,
		PinPositions: pinPositions,
	}
}

// netNameOrder produces the net insertion order: one net per segment group
// in ascending group order, then any label-only nets (labels that resolved
// pins directly, with no wire group of their own) in connection order.
// Duplicate names collapse; the graph's last-write-wins indexing makes the
// final insertion authoritative either way.
func netNameOrder(netNames map[int]string, conns []circuit.PinConnection) []string {
	var order []string
	added := make(map[string]bool)

	groupIDs := make([]int, 0, len(netNames))
	for id := range netNames {
		groupIDs = append(groupIDs, id)
	}
	sort.Ints(groupIDs)
	for _, id := range groupIDs {
		name := netNames[id]
		if !added[name] {
			added[name] = true
			order = append(order, name)
		}
	}

	for _, conn := range conns {
		if !added[conn.NetName] {
			added[conn.NetName] = true
			order = append(order, conn.NetName)
		}
	}

	return order
}
