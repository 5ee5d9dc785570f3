package schematic

import (
	"strings"
	"testing"
)

func TestParseMinimalSchematic(t *testing.T) {
	input := `(kicad_sch
		(version 20250114)
		(generator "eeschema")
		(generator_version "9.0")
		(uuid 862335ee-c981-4fe1-9eb9-84db19301dd4)
		(paper "A4")
		(lib_symbols)
	)`

	sch, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Failed to parse schematic: %v", err)
	}

	if sch.Version != 20250114 {
		t.Errorf("Expected version 20250114, got %d", sch.Version)
	}
	if sch.Generator != "eeschema" {
		t.Errorf("Expected generator 'eeschema', got '%s'", sch.Generator)
	}
	if sch.GeneratorVer != "9.0" {
		t.Errorf("Expected generator version '9.0', got '%s'", sch.GeneratorVer)
	}
	if sch.Paper != "A4" {
		t.Errorf("Expected paper 'A4', got '%s'", sch.Paper)
	}
}

func TestParseRejectsOldVersion(t *testing.T) {
	input := `(kicad_sch (version 20200310) (generator "eeschema"))`

	if _, err := Parse(strings.NewReader(input)); err == nil {
		t.Error("Expected error for pre-6.0 file format version")
	}
}

func TestParseRejectsNonSchematic(t *testing.T) {
	input := `(kicad_pcb (version 20250114))`

	if _, err := Parse(strings.NewReader(input)); err == nil {
		t.Error("Expected error for non-schematic root node")
	}
}

func TestParseSchematicWithSymbol(t *testing.T) {
	input := `(kicad_sch
		(version 20231120)
		(generator "eeschema")
		(uuid test-uuid)
		(paper "A4")
		(lib_symbols
			(symbol "Device:R"
				(property "Reference" "R" (at 0 0 0))
				(property "Value" "R" (at 0 0 0))
				(pin passive line (at -2.54 0 0) (length 2.54)
					(name "1")
					(number "1")
				)
				(pin passive line (at 2.54 0 180) (length 2.54)
					(name "2")
					(number "2")
				)
			)
		)
		(symbol (lib_id "Device:R")
			(at 100 50 90)
			(unit 1)
			(uuid sym-uuid-1)
			(property "Reference" "R1" (at 100 45 0))
			(property "Value" "10k" (at 100 55 0))
		)
	)`

	sch, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Failed to parse schematic: %v", err)
	}

	if len(sch.LibSymbols) != 1 {
		t.Fatalf("Expected 1 lib symbol, got %d", len(sch.LibSymbols))
	}
	if len(sch.LibSymbols[0].Pins) != 2 {
		t.Errorf("Expected 2 pins on lib symbol, got %d", len(sch.LibSymbols[0].Pins))
	}

	if len(sch.Symbols) != 1 {
		t.Fatalf("Expected 1 symbol instance, got %d", len(sch.Symbols))
	}

	sym := &sch.Symbols[0]
	if sym.LibID != "Device:R" {
		t.Errorf("Expected lib_id 'Device:R', got '%s'", sym.LibID)
	}
	if sym.Position.X != 100 || sym.Position.Y != 50 {
		t.Errorf("Expected position (100, 50), got (%.1f, %.1f)", sym.Position.X, sym.Position.Y)
	}
	if sym.Angle != 90 {
		t.Errorf("Expected angle 90, got %.1f", float64(sym.Angle))
	}
	if sym.Reference() != "R1" {
		t.Errorf("Expected reference 'R1', got '%s'", sym.Reference())
	}
	if sym.Value() != "10k" {
		t.Errorf("Expected value '10k', got '%s'", sym.Value())
	}

	if r1 := sch.GetSymbol("R1"); r1 == nil {
		t.Error("GetSymbol('R1') returned nil")
	}
	refs := sch.GetAllReferences()
	if len(refs) != 1 || refs[0] != "R1" {
		t.Errorf("Expected refs ['R1'], got %v", refs)
	}
}

func TestParseLibSymbolNestedUnits(t *testing.T) {
	// KiCad nests pins inside per-unit sub-symbols
	input := `(kicad_sch
		(version 20231120)
		(generator "eeschema")
		(lib_symbols
			(symbol "Device:C"
				(symbol "C_0_1"
					(pin passive line (at 0 3.81 270) (length 2.54)
						(name "~") (number "1"))
				)
				(symbol "C_0_2"
					(pin passive line (at 0 -3.81 90) (length 2.54)
						(name "~") (number "2"))
				)
			)
		)
	)`

	sch, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Failed to parse schematic: %v", err)
	}

	lib := sch.GetLibSymbol("Device:C")
	if lib == nil {
		t.Fatal("GetLibSymbol('Device:C') returned nil")
	}
	if len(lib.Pins) != 2 {
		t.Errorf("Expected 2 pins across units, got %d", len(lib.Pins))
	}
}

func TestParseSchematicWithWires(t *testing.T) {
	input := `(kicad_sch
		(version 20231120)
		(generator "eeschema")
		(wire (pts (xy 100 50) (xy 150 50))
			(stroke (width 0) (type default))
			(uuid wire-1)
		)
		(wire (pts (xy 150 50) (xy 150 100))
			(stroke (width 0) (type default))
			(uuid wire-2)
		)
		(junction (at 150 50) (uuid junc-1))
		(no_connect (at 200 200) (uuid nc-1))
	)`

	sch, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Failed to parse schematic: %v", err)
	}

	if len(sch.Wires) != 2 {
		t.Fatalf("Expected 2 wires, got %d", len(sch.Wires))
	}
	if len(sch.Wires[0].Points) != 2 {
		t.Fatalf("Expected 2 points on first wire, got %d", len(sch.Wires[0].Points))
	}
	if sch.Wires[0].Points[1].X != 150 || sch.Wires[0].Points[1].Y != 50 {
		t.Errorf("Unexpected wire endpoint: %v", sch.Wires[0].Points[1])
	}

	if len(sch.Junctions) != 1 {
		t.Errorf("Expected 1 junction, got %d", len(sch.Junctions))
	}
	if len(sch.NoConnects) != 1 {
		t.Errorf("Expected 1 no-connect, got %d", len(sch.NoConnects))
	}
}

func TestParseSchematicWithLabels(t *testing.T) {
	input := `(kicad_sch
		(version 20231120)
		(generator "eeschema")
		(label "SDA" (at 100 50 0) (uuid label-1))
		(global_label "VCC" (shape input) (at 120 60 0) (uuid glabel-1))
		(hierarchical_label "CLK_OUT" (shape output) (at 140 70 0) (uuid hlabel-1))
	)`

	sch, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Failed to parse schematic: %v", err)
	}

	if len(sch.Labels) != 1 || sch.Labels[0].Text != "SDA" {
		t.Errorf("Expected local label 'SDA', got %v", sch.Labels)
	}
	if len(sch.GlobalLabels) != 1 || sch.GlobalLabels[0].Text != "VCC" {
		t.Errorf("Expected global label 'VCC', got %v", sch.GlobalLabels)
	}
	if sch.GlobalLabels[0].Shape != "input" {
		t.Errorf("Expected shape 'input', got '%s'", sch.GlobalLabels[0].Shape)
	}
	if len(sch.HierLabels) != 1 || sch.HierLabels[0].Text != "CLK_OUT" {
		t.Errorf("Expected hierarchical label 'CLK_OUT', got %v", sch.HierLabels)
	}

	names := sch.GetLabels()
	if len(names) != 3 {
		t.Errorf("Expected 3 distinct label names, got %v", names)
	}
}

func TestGetBoundingBox(t *testing.T) {
	input := `(kicad_sch
		(version 20231120)
		(generator "eeschema")
		(wire (pts (xy 10 20) (xy 110 20)) (uuid w1))
		(junction (at 60 90) (uuid j1))
	)`

	sch, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Failed to parse schematic: %v", err)
	}

	bbox := sch.GetBoundingBox()
	if bbox.IsEmpty() {
		t.Fatal("Bounding box should not be empty")
	}
	if bbox.Width() != 100 || bbox.Height() != 70 {
		t.Errorf("Expected 100x70 bounding box, got %.1fx%.1f", bbox.Width(), bbox.Height())
	}
}
