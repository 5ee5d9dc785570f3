package sexp

import (
	"testing"

	"github.com/OpenTraceLab/OpenTraceDRC/pkg/kicad/sexp/kicadsexp"
)

func mustParse(t *testing.T, input string) kicadsexp.Sexp {
	t.Helper()
	sexps, err := kicadsexp.ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse %q: %v", input, err)
	}
	if len(sexps) != 1 {
		t.Fatalf("Expected 1 expression, got %d", len(sexps))
	}
	return sexps[0]
}

func TestFindNode(t *testing.T) {
	node := mustParse(t, `(symbol (lib_id "Device:R") (at 100 50) (unit 1))`)

	at, found := FindNode(node, "at")
	if !found {
		t.Fatal("FindNode('at') not found")
	}
	if name, _ := GetNodeName(at); name != "at" {
		t.Errorf("Expected node name 'at', got '%s'", name)
	}

	if _, found := FindNode(node, "missing"); found {
		t.Error("FindNode('missing') should not be found")
	}
}

func TestFindAllNodes(t *testing.T) {
	node := mustParse(t, `(root (pin 1) (pin 2) (other) (pin 3))`)

	pins := FindAllNodes(node, "pin")
	if len(pins) != 3 {
		t.Errorf("Expected 3 pin nodes, got %d", len(pins))
	}
	if len(FindAllNodes(node, "nope")) != 0 {
		t.Error("Expected no matches for 'nope'")
	}
}

func TestHasSymbol(t *testing.T) {
	node := mustParse(t, `(pin passive line hide (at 0 0))`)

	if !HasSymbol(node, "hide") {
		t.Error("Expected 'hide' symbol to be present")
	}
	if HasSymbol(node, "show") {
		t.Error("'show' should not be present")
	}
}

func TestGetValues(t *testing.T) {
	node := mustParse(t, `(version 20231120)`)

	if v, err := GetInt(node, 1); err != nil || v != 20231120 {
		t.Errorf("GetInt: expected 20231120, got %d (err %v)", v, err)
	}
	if s, err := GetString(node, 0); err != nil || s != "version" {
		t.Errorf("GetString: expected 'version', got '%s' (err %v)", s, err)
	}
	if _, err := GetString(node, 5); err == nil {
		t.Error("Expected out-of-bounds error")
	}

	fnode := mustParse(t, `(width 0.254)`)
	if f, err := GetFloat(fnode, 1); err != nil || f != 0.254 {
		t.Errorf("GetFloat: expected 0.254, got %f (err %v)", f, err)
	}
	if _, err := GetFloat(mustParse(t, `(width abc)`), 1); err == nil {
		t.Error("Expected parse error for non-numeric float")
	}
}

func TestGetPosition(t *testing.T) {
	pos, err := GetPosition(mustParse(t, `(at 100.5 50.25 90)`))
	if err != nil {
		t.Fatalf("GetPosition failed: %v", err)
	}
	if pos.X != 100.5 || pos.Y != 50.25 {
		t.Errorf("Expected (100.5, 50.25), got (%.2f, %.2f)", pos.X, pos.Y)
	}
	if pos.Angle != 90 {
		t.Errorf("Expected angle 90, got %.1f", float64(pos.Angle))
	}

	// Angle is optional
	pos, err = GetPosition(mustParse(t, `(at 10 20)`))
	if err != nil {
		t.Fatalf("GetPosition without angle failed: %v", err)
	}
	if pos.Angle != 0 {
		t.Errorf("Expected default angle 0, got %.1f", float64(pos.Angle))
	}

	if _, err := GetPosition(mustParse(t, `(xy 10 20)`)); err == nil {
		t.Error("Expected error for non-'at' node")
	}
}

func TestGetPositionXY(t *testing.T) {
	pos, err := GetPositionXY(mustParse(t, `(xy 150 50)`))
	if err != nil {
		t.Fatalf("GetPositionXY failed: %v", err)
	}
	if pos.X != 150 || pos.Y != 50 {
		t.Errorf("Expected (150, 50), got (%.1f, %.1f)", pos.X, pos.Y)
	}
}

func TestGetUUID(t *testing.T) {
	uuid, err := GetUUID(mustParse(t, `(uuid 862335ee-c981-4fe1-9eb9-84db19301dd4)`))
	if err != nil {
		t.Fatalf("GetUUID failed: %v", err)
	}
	if uuid != "862335ee-c981-4fe1-9eb9-84db19301dd4" {
		t.Errorf("Unexpected UUID: %s", uuid)
	}

	if _, err := GetUUID(mustParse(t, `(at 1 2)`)); err == nil {
		t.Error("Expected error for non-uuid node")
	}
}

func TestGetProperty(t *testing.T) {
	prop, err := GetProperty(mustParse(t, `(property "Reference" "R1" (at 100 45 0))`))
	if err != nil {
		t.Fatalf("GetProperty failed: %v", err)
	}
	if prop.Key != "Reference" || prop.Value != "R1" {
		t.Errorf("Expected Reference=R1, got %s=%s", prop.Key, prop.Value)
	}
	if prop.Position.X != 100 || prop.Position.Y != 45 {
		t.Errorf("Unexpected property position: %v", prop.Position)
	}
}

func TestPositionDistanceTo(t *testing.T) {
	a := Position{X: 0, Y: 0}
	b := Position{X: 3, Y: 4}
	if d := a.DistanceTo(b); d != 5.0 {
		t.Errorf("Expected distance 5.0, got %f", d)
	}
	if d := a.DistanceTo(a); d != 0 {
		t.Errorf("Expected zero distance, got %f", d)
	}
}

func TestBoundingBox(t *testing.T) {
	bbox := NewBoundingBox()
	if !bbox.IsEmpty() {
		t.Error("New bounding box should be empty")
	}

	bbox.Expand(Position{X: 10, Y: 20})
	bbox.Expand(Position{X: 110, Y: 90})

	if bbox.IsEmpty() {
		t.Error("Expanded bounding box should not be empty")
	}
	if bbox.Width() != 100 || bbox.Height() != 70 {
		t.Errorf("Expected 100x70, got %.1fx%.1f", bbox.Width(), bbox.Height())
	}
	if c := bbox.Center(); c.X != 60 || c.Y != 55 {
		t.Errorf("Expected center (60, 55), got (%.1f, %.1f)", c.X, c.Y)
	}
	if !bbox.Contains(Position{X: 50, Y: 50}) {
		t.Error("Expected (50, 50) to be contained")
	}
	if bbox.Contains(Position{X: 200, Y: 50}) {
		t.Error("(200, 50) should be outside")
	}
}
