package netlist

import (
	"strings"
	"testing"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to build parser: %v", err)
	}
	return p
}

const sampleNetlist = `* Voltage regulator board
.title regulator
U1 VIN GND VOUT LM7805
C1 VIN GND 100nF
C2 VOUT 0 10uF
R1 VOUT LED_A 330
.end
`

func TestParseNetlist(t *testing.T) {
	p := newTestParser(t)

	file, err := p.ParseString(sampleNetlist)
	if err != nil {
		t.Fatalf("Failed to parse netlist: %v", err)
	}

	var directives, elements int
	for _, card := range file.Cards {
		if card.IsDirective() {
			directives++
		} else {
			elements++
		}
	}
	if directives != 2 {
		t.Errorf("Expected 2 directives, got %d", directives)
	}
	if elements != 4 {
		t.Errorf("Expected 4 element cards, got %d", elements)
	}
}

func TestCardAccessors(t *testing.T) {
	p := newTestParser(t)

	file, err := p.ParseString("U1 VIN GND VOUT LM7805\n")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if len(file.Cards) != 1 {
		t.Fatalf("Expected 1 card, got %d", len(file.Cards))
	}

	card := file.Cards[0]
	if card.Name != "U1" {
		t.Errorf("Expected name 'U1', got '%s'", card.Name)
	}
	if card.Value() != "LM7805" {
		t.Errorf("Expected value 'LM7805', got '%s'", card.Value())
	}

	nets := card.Nets()
	if len(nets) != 3 {
		t.Fatalf("Expected 3 nets, got %d", len(nets))
	}
	if nets[0] != "VIN" || nets[1] != "GND" || nets[2] != "VOUT" {
		t.Errorf("Unexpected nets: %v", nets)
	}
}

func TestParseComments(t *testing.T) {
	p := newTestParser(t)

	input := `* full-line comment
R1 A B 10k ; trailing comment
; another comment line
R2 B C 22k
`
	file, err := p.ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	var elements int
	for _, card := range file.Cards {
		if !card.IsDirective() {
			elements++
		}
	}
	if elements != 2 {
		t.Errorf("Expected 2 element cards, got %d", elements)
	}
}

func TestParseReader(t *testing.T) {
	p := newTestParser(t)

	file, err := p.Parse(strings.NewReader("R1 A B 10k\n"))
	if err != nil {
		t.Fatalf("Failed to parse from reader: %v", err)
	}
	if len(file.Cards) != 1 {
		t.Errorf("Expected 1 card, got %d", len(file.Cards))
	}
}

func TestBuildGraph(t *testing.T) {
	p := newTestParser(t)

	file, err := p.ParseString(sampleNetlist)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	g := BuildGraph(file)

	if n := len(g.Components()); n != 4 {
		t.Errorf("Expected 4 components, got %d", n)
	}

	// Nets: VIN, GND, VOUT, LED_A ("0" folds into GND)
	if n := len(g.Nets()); n != 4 {
		t.Errorf("Expected 4 nets, got %d", n)
	}
	if _, ok := g.Net("0"); ok {
		t.Error("SPICE node '0' should be normalized away")
	}

	comps := g.ComponentsOnNet("GND")
	if len(comps) != 3 {
		t.Errorf("Expected 3 components on GND (including the one via node '0'), got %d", len(comps))
	}

	pin, ok := g.ConnectionPin("U1", "VOUT")
	if !ok {
		t.Fatal("Expected edge U1 -> VOUT")
	}
	if pin.Number != "3" {
		t.Errorf("Expected pin '3' (positional), got '%s'", pin.Number)
	}
}

func TestBuildGraphVoltages(t *testing.T) {
	p := newTestParser(t)

	file, err := p.ParseString(sampleNetlist)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	g := BuildGraph(file)

	gnd, ok := g.Net("GND")
	if !ok {
		t.Fatal("Net GND not found")
	}
	if gnd.VoltageLevel == nil || *gnd.VoltageLevel != 0.0 {
		t.Error("Expected 0.0V on GND")
	}

	vout, ok := g.Net("VOUT")
	if !ok {
		t.Fatal("Net VOUT not found")
	}
	if vout.VoltageLevel == nil || *vout.VoltageLevel != 5.0 {
		t.Error("Expected 5.0V on VOUT from the LM7805 card")
	}
}

func TestBuildGraphStopsAtEnd(t *testing.T) {
	p := newTestParser(t)

	input := `R1 A B 10k
.end
R2 C D 22k
`
	file, err := p.ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	g := BuildGraph(file)
	if _, ok := g.Component("R2"); ok {
		t.Error("Cards after .end must be ignored")
	}
	if _, ok := g.Component("R1"); !ok {
		t.Error("R1 should be present")
	}
}
