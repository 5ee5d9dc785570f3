package netlist

import (
	"strconv"
	"strings"

	"github.com/OpenTraceLab/OpenTraceDRC/pkg/circuit"
)

// BuildGraph constructs a circuit graph from an already-connected netlist.
// Element pins are numbered "1".."n" in card order. The SPICE ground node
// "0" is normalized to "GND", and ground-named nets get a 0.0 V level up
// front; regulator-derived voltages are then propagated as usual.
func BuildGraph(file *File) *circuit.Graph {
	graph := circuit.NewGraph()

	var elements []*Card
	for _, card := range file.Cards {
		if card.IsDirective() {
			if strings.EqualFold(card.Directive, ".end") {
				break
			}
			continue
		}
		elements = append(elements, card)
	}

	var conns []circuit.PinConnection
	netOrder := []string{}
	netSeen := make(map[string]bool)

	for _, card := range elements {
		comp := &circuit.Component{
			Reference: card.Name,
			Value:     card.Value(),
		}
		for i, net := range card.Nets() {
			name := normalizeNet(net)
			pinNumber := pinName(i)
			comp.Pins = append(comp.Pins, circuit.Pin{Number: pinNumber, ElectricalType: "passive"})
			conns = append(conns, circuit.PinConnection{
				ComponentRef: card.Name,
				PinNumber:    pinNumber,
				NetName:      name,
			})
			if !netSeen[name] {
				netSeen[name] = true
				netOrder = append(netOrder, name)
			}
		}
		graph.AddComponent(comp)
	}

	for _, name := range netOrder {
		net := &circuit.Net{Name: name}
		if circuit.IsGroundName(name) {
			net.SetVoltage(0.0)
		}
		graph.AddNet(net, conns)
	}

	circuit.PropagateVoltages(graph)

	return graph
}

// normalizeNet maps the SPICE ground node "0" to "GND"
func normalizeNet(name string) string {
	if name == "0" {
		return "GND"
	}
	return name
}

func pinName(idx int) string {
	// Pins are implicit in a netlist; number them by position
	return strconv.Itoa(idx + 1)
}
