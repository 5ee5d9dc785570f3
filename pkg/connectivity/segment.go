package connectivity

import (
	"fmt"
	"log"

	"github.com/OpenTraceLab/OpenTraceDRC/pkg/circuit"
)

// Wire is a schematic wire polyline: an ordered run of at least two points
type Wire struct {
	Points []circuit.Position
}

// Segment is one atomic wire segment, derived from a consecutive point pair
// of a source polyline. Segments exist only during graph construction.
type Segment struct {
	Start circuit.Position
	End   circuit.Position
	ID    string
}

// SplitWires decomposes polylines into atomic segments, one per consecutive
// point pair. Wires with fewer than two points are malformed upstream input;
// they are skipped with a warning rather than aborting the analysis.
func SplitWires(wires []Wire) []Segment {
	var segments []Segment
	for wi, wire := range wires {
		if len(wire.Points) < 2 {
			log.Printf("connectivity: skipping wire %d with %d point(s)", wi, len(wire.Points))
			continue
		}
		for i := 0; i < len(wire.Points)-1; i++ {
			segments = append(segments, Segment{
				Start: wire.Points[i],
				End:   wire.Points[i+1],
				ID:    fmt.Sprintf("w%d_s%d", wi, i),
			})
		}
	}
	return segments
}

// GroupSegments partitions segments into electrically-connected groups:
// two segments join when any endpoint pair sits closer than tol. Group ids
// are assigned in first-seen segment order, so output is deterministic for a
// given input order.
//
// The pairwise comparison is O(S^2) in the segment count. Schematics carry
// at most a few thousand segments, so this is an accepted ceiling; spatially
// bucketing segments first is the upgrade path for very large boards.
func GroupSegments(segments []Segment, tol float64) []int {
	uf := newUnionFind(len(segments))

	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			if segmentsTouch(segments[i], segments[j], tol) {
				uf.union(i, j)
			}
		}
	}

	groups := make([]int, len(segments))
	next := 0
	rootToGroup := make(map[int]int)
	for i := range segments {
		root := uf.find(i)
		id, ok := rootToGroup[root]
		if !ok {
			id = next
			rootToGroup[root] = id
			next++
		}
		groups[i] = id
	}
	return groups
}

// segmentsTouch reports whether any endpoint-to-endpoint distance between
// the two segments is strictly below tol
func segmentsTouch(a, b Segment, tol float64) bool {
	return a.Start.DistanceTo(b.Start) < tol ||
		a.Start.DistanceTo(b.End) < tol ||
		a.End.DistanceTo(b.Start) < tol ||
		a.End.DistanceTo(b.End) < tol
}
