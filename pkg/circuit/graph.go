package circuit

// edge is a directed pin connection from a component node to a net node
type edge struct {
	from int // component node index
	to   int // net node index
	pin  Pin
}

// Graph is the circuit graph. Index maps are owned by the graph instance so
// independent analyses never share state. Re-adding an existing reference or
// net name repoints the index at the new node and leaves the old node
// allocated; graphs are build-once, so the orphan is harmless.
type Graph struct {
	nodes []Node
	edges []edge

	out [][]int // node index -> outgoing edge indices
	in  [][]int // node index -> incoming edge indices

	componentIndex map[string]int // ref_des -> node index
	netIndex       map[string]int // net name -> node index
}

// NewGraph creates an empty circuit graph
func NewGraph() *Graph {
	return &Graph{
		componentIndex: make(map[string]int),
		netIndex:       make(map[string]int),
	}
}

func (g *Graph) addNode(n Node) int {
	g.nodes = append(g.nodes, n)
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)
	return len(g.nodes) - 1
}

// AddComponent inserts a component node keyed by its reference designator.
// Last write wins on duplicate references.
func (g *Graph) AddComponent(c *Component) {
	id := g.addNode(Node{Kind: NodeComponent, Component: c})
	g.componentIndex[c.Reference] = id
}

// AddNet inserts a net node and connects every listed pin whose component is
// already present in the graph. Connections referencing unknown components
// are skipped. Last write wins on duplicate net names.
func (g *Graph) AddNet(n *Net, conns []PinConnection) {
	id := g.addNode(Node{Kind: NodeNet, Net: n})
	g.netIndex[n.Name] = id

	for _, conn := range conns {
		if conn.NetName != n.Name {
			continue
		}
		compID, ok := g.componentIndex[conn.ComponentRef]
		if !ok {
			continue
		}
		pin := Pin{Number: conn.PinNumber}
		if comp := g.nodes[compID].Component; comp != nil {
			for _, p := range comp.Pins {
				if p.Number == conn.PinNumber {
					pin = p
					break
				}
			}
		}
		eid := len(g.edges)
		g.edges = append(g.edges, edge{from: compID, to: id, pin: pin})
		g.out[compID] = append(g.out[compID], eid)
		g.in[id] = append(g.in[id], eid)
	}
}

// Component returns the component with the given reference designator
func (g *Graph) Component(ref string) (*Component, bool) {
	id, ok := g.componentIndex[ref]
	if !ok {
		return nil, false
	}
	return g.nodes[id].Component, true
}

// Net returns the net with the given name
func (g *Graph) Net(name string) (*Net, bool) {
	id, ok := g.netIndex[name]
	if !ok {
		return nil, false
	}
	return g.nodes[id].Net, true
}

// Components returns every component currently indexed, in insertion order
// of the underlying nodes
func (g *Graph) Components() []*Component {
	var result []*Component
	for i, n := range g.nodes {
		if n.Kind != NodeComponent {
			continue
		}
		// Skip nodes that were displaced by a later insertion
		if g.componentIndex[n.Component.Reference] == i {
			result = append(result, n.Component)
		}
	}
	return result
}

// Nets returns every net currently indexed, in insertion order
func (g *Graph) Nets() []*Net {
	var result []*Net
	for i, n := range g.nodes {
		if n.Kind != NodeNet {
			continue
		}
		if g.netIndex[n.Net.Name] == i {
			result = append(result, n.Net)
		}
	}
	return result
}

// NetsForComponent returns the nets connected to the component's pins
func (g *Graph) NetsForComponent(ref string) []*Net {
	id, ok := g.componentIndex[ref]
	if !ok {
		return nil
	}
	var nets []*Net
	for _, eid := range g.out[id] {
		nets = append(nets, g.nodes[g.edges[eid].to].Net)
	}
	return nets
}

// ComponentsOnNet returns the components with at least one pin on the net
func (g *Graph) ComponentsOnNet(name string) []*Component {
	id, ok := g.netIndex[name]
	if !ok {
		return nil
	}
	var comps []*Component
	for _, eid := range g.in[id] {
		comps = append(comps, g.nodes[g.edges[eid].from].Component)
	}
	return comps
}

// ConnectionPin returns the pin metadata on the edge between a component and
// a net, if such an edge exists. When the component touches the net with
// more than one pin the first recorded edge wins.
func (g *Graph) ConnectionPin(ref, netName string) (Pin, bool) {
	compID, ok := g.componentIndex[ref]
	if !ok {
		return Pin{}, false
	}
	netID, ok := g.netIndex[netName]
	if !ok {
		return Pin{}, false
	}
	for _, eid := range g.out[compID] {
		if g.edges[eid].to == netID {
			return g.edges[eid].pin, true
		}
	}
	return Pin{}, false
}

// ComponentsNear returns all components within radius millimeters of the
// named component. The query component itself is excluded, and components
// without a placement never match. A linear scan is fine at schematic scale;
// spatial bucketing would be the upgrade path for very large boards.
func (g *Graph) ComponentsNear(ref string, radius float64) []*Component {
	target, ok := g.Component(ref)
	if !ok || target.Position == nil {
		return nil
	}
	var result []*Component
	for _, c := range g.Components() {
		if c.Reference == ref || c.Position == nil {
			continue
		}
		if target.Position.DistanceTo(*c.Position) <= radius {
			result = append(result, c)
		}
	}
	return result
}

// CapacitorsNear returns the capacitors within radius mm of the named
// component
func (g *Graph) CapacitorsNear(ref string, radius float64) []*Component {
	var caps []*Component
	for _, c := range g.ComponentsNear(ref, radius) {
		if c.IsCapacitor() {
			caps = append(caps, c)
		}
	}
	return caps
}

// FindPath returns the shortest electrical path between two components as an
// alternating sequence of component references and bracketed net names.
// Edges are traversed in both directions; all hops weigh the same, so BFS
// finds the shortest path. Returns false when the components are not
// transitively connected or either endpoint is unknown.
func (g *Graph) FindPath(fromRef, toRef string) ([]string, bool) {
	start, ok := g.componentIndex[fromRef]
	if !ok {
		return nil, false
	}
	goal, ok := g.componentIndex[toRef]
	if !ok {
		return nil, false
	}
	if start == goal {
		return []string{g.nodes[start].Label()}, true
	}

	prev := make(map[int]int, len(g.nodes))
	prev[start] = start
	queue := []int{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			break
		}
		for _, eid := range g.out[cur] {
			next := g.edges[eid].to
			if _, seen := prev[next]; !seen {
				prev[next] = cur
				queue = append(queue, next)
			}
		}
		for _, eid := range g.in[cur] {
			next := g.edges[eid].from
			if _, seen := prev[next]; !seen {
				prev[next] = cur
				queue = append(queue, next)
			}
		}
	}

	if _, found := prev[goal]; !found {
		return nil, false
	}

	var path []string
	for cur := goal; ; cur = prev[cur] {
		path = append(path, g.nodes[cur].Label())
		if cur == prev[cur] {
			break
		}
	}
	// Reverse into start-to-goal order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
