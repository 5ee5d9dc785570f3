package schematic

import (
	"fmt"
	"io"
	"os"

	"github.com/OpenTraceLab/OpenTraceDRC/pkg/kicad/sexp"
	"github.com/OpenTraceLab/OpenTraceDRC/pkg/kicad/sexp/kicadsexp"
)

// Minimum supported KiCad version for schematics (6.0 = 20211014)
const MinSupportedVersion = 20211014

// ParseFile reads and parses a KiCad schematic file
func ParseFile(filename string) (*Schematic, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads and parses a KiCad schematic from an io.Reader
func Parse(r io.Reader) (*Schematic, error) {
	sexps, err := kicadsexp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse s-expression: %w", err)
	}

	if len(sexps) == 0 {
		return nil, fmt.Errorf("empty file or no valid s-expressions found")
	}

	// The root must be a (kicad_sch ...) expression
	root := sexps[0]
	rootName, err := sexp.GetNodeName(root)
	if err != nil {
		return nil, fmt.Errorf("failed to get root node name: %w", err)
	}
	if rootName != "kicad_sch" {
		return nil, fmt.Errorf("not a KiCad schematic file: expected 'kicad_sch', got '%s'", rootName)
	}

	sch := &Schematic{}

	if err := parseHeader(root, sch); err != nil {
		return nil, fmt.Errorf("failed to parse header: %w", err)
	}

	if uuidNode, found := sexp.FindNode(root, "uuid"); found {
		if uuid, err := sexp.GetUUID(uuidNode); err == nil {
			sch.UUID = uuid
		}
	}

	if paperNode, found := sexp.FindNode(root, "paper"); found {
		if paper, err := sexp.GetQuotedString(paperNode, 1); err == nil {
			sch.Paper = paper
		}
	}

	if libSymbolsNode, found := sexp.FindNode(root, "lib_symbols"); found {
		sch.LibSymbols = parseLibSymbols(libSymbolsNode)
	}

	sch.Symbols = parseSymbols(root)
	sch.Wires = parseWires(root)
	sch.Junctions = parseJunctions(root)
	sch.NoConnects = parseNoConnects(root)
	sch.Labels = parseLabels(root)
	sch.GlobalLabels = parseGlobalLabels(root)
	sch.HierLabels = parseHierLabels(root)

	return sch, nil
}

// parseHeader extracts version and generator information
func parseHeader(root kicadsexp.Sexp, sch *Schematic) error {
	versionNode, found := sexp.FindNode(root, "version")
	if !found {
		return fmt.Errorf("missing required 'version' field")
	}

	ver, err := sexp.GetInt(versionNode, 1)
	if err != nil {
		return fmt.Errorf("failed to parse version: %w", err)
	}
	if ver < MinSupportedVersion {
		return fmt.Errorf("unsupported KiCad version: %d (minimum required: %d / KiCad 6.0)", ver, MinSupportedVersion)
	}
	sch.Version = ver

	if genNode, found := sexp.FindNode(root, "generator"); found {
		if gen, err := sexp.GetQuotedString(genNode, 1); err == nil {
			sch.Generator = gen
		}
	}
	if genVerNode, found := sexp.FindNode(root, "generator_version"); found {
		if genVer, err := sexp.GetQuotedString(genVerNode, 1); err == nil {
			sch.GeneratorVer = genVer
		}
	}

	return nil
}

// parseLibSymbols parses embedded library symbol definitions
func parseLibSymbols(node kicadsexp.Sexp) []LibSymbol {
	symbolNodes := sexp.FindAllNodes(node, "symbol")
	symbols := make([]LibSymbol, 0, len(symbolNodes))

	for _, symNode := range symbolNodes {
		sym := LibSymbol{}
		sym.Name, _ = sexp.GetQuotedString(symNode, 1)

		// Pins may appear directly or inside nested symbol units
		sym.Pins = append(sym.Pins, parsePins(symNode)...)
		for _, unitNode := range sexp.FindAllNodes(symNode, "symbol") {
			sym.Pins = append(sym.Pins, parsePins(unitNode)...)
		}

		symbols = append(symbols, sym)
	}

	return symbols
}

// parsePins parses the pin definitions directly under a node
func parsePins(node kicadsexp.Sexp) []Pin {
	pinNodes := sexp.FindAllNodes(node, "pin")
	pins := make([]Pin, 0, len(pinNodes))

	for _, pn := range pinNodes {
		pin := Pin{}
		pin.Type, _ = sexp.GetString(pn, 1)

		if atNode, found := sexp.FindNode(pn, "at"); found {
			if pos, err := sexp.GetPosition(atNode); err == nil {
				pin.Position = pos.Position
				pin.Angle = pos.Angle
			}
		}
		if nameNode, found := sexp.FindNode(pn, "name"); found {
			pin.Name, _ = sexp.GetQuotedString(nameNode, 1)
		}
		if numNode, found := sexp.FindNode(pn, "number"); found {
			pin.Number, _ = sexp.GetQuotedString(numNode, 1)
		}
		pin.Hide = sexp.HasSymbol(pn, "hide")

		pins = append(pins, pin)
	}

	return pins
}

// parseSymbols parses symbol instances placed on the schematic
func parseSymbols(root kicadsexp.Sexp) []Symbol {
	symbolNodes := sexp.FindAllNodes(root, "symbol")
	symbols := make([]Symbol, 0, len(symbolNodes))

	for _, symNode := range symbolNodes {
		sym := Symbol{Unit: 1}

		if libNode, found := sexp.FindNode(symNode, "lib_id"); found {
			sym.LibID, _ = sexp.GetQuotedString(libNode, 1)
		}
		if atNode, found := sexp.FindNode(symNode, "at"); found {
			if pos, err := sexp.GetPosition(atNode); err == nil {
				sym.Position = pos.Position
				sym.Angle = pos.Angle
			}
		}
		if unitNode, found := sexp.FindNode(symNode, "unit"); found {
			sym.Unit, _ = sexp.GetInt(unitNode, 1)
		}
		if uuidNode, found := sexp.FindNode(symNode, "uuid"); found {
			sym.UUID, _ = sexp.GetUUID(uuidNode)
		}
		for _, pn := range sexp.FindAllNodes(symNode, "property") {
			if prop, err := sexp.GetProperty(pn); err == nil {
				sym.Properties = append(sym.Properties, prop)
			}
		}

		symbols = append(symbols, sym)
	}

	return symbols
}

// parseWires parses wire connection polylines
func parseWires(root kicadsexp.Sexp) []Wire {
	wireNodes := sexp.FindAllNodes(root, "wire")
	wires := make([]Wire, 0, len(wireNodes))

	for _, wn := range wireNodes {
		wire := Wire{}

		if ptsNode, found := sexp.FindNode(wn, "pts"); found {
			for _, xy := range sexp.FindAllNodes(ptsNode, "xy") {
				if pos, err := sexp.GetPositionXY(xy); err == nil {
					wire.Points = append(wire.Points, pos)
				}
			}
		}
		if uuidNode, found := sexp.FindNode(wn, "uuid"); found {
			wire.UUID, _ = sexp.GetUUID(uuidNode)
		}

		wires = append(wires, wire)
	}

	return wires
}

// parseJunctions parses wire junctions
func parseJunctions(root kicadsexp.Sexp) []Junction {
	juncNodes := sexp.FindAllNodes(root, "junction")
	junctions := make([]Junction, 0, len(juncNodes))

	for _, jn := range juncNodes {
		junc := Junction{}
		if atNode, found := sexp.FindNode(jn, "at"); found {
			if pos, err := sexp.GetPosition(atNode); err == nil {
				junc.Position = pos.Position
			}
		}
		if uuidNode, found := sexp.FindNode(jn, "uuid"); found {
			junc.UUID, _ = sexp.GetUUID(uuidNode)
		}
		junctions = append(junctions, junc)
	}

	return junctions
}

// parseNoConnects parses no-connect markers
func parseNoConnects(root kicadsexp.Sexp) []NoConnect {
	ncNodes := sexp.FindAllNodes(root, "no_connect")
	ncs := make([]NoConnect, 0, len(ncNodes))

	for _, ncn := range ncNodes {
		nc := NoConnect{}
		if atNode, found := sexp.FindNode(ncn, "at"); found {
			if pos, err := sexp.GetPosition(atNode); err == nil {
				nc.Position = pos.Position
			}
		}
		if uuidNode, found := sexp.FindNode(ncn, "uuid"); found {
			nc.UUID, _ = sexp.GetUUID(uuidNode)
		}
		ncs = append(ncs, nc)
	}

	return ncs
}

// parseLabels parses local wire labels
func parseLabels(root kicadsexp.Sexp) []Label {
	labelNodes := sexp.FindAllNodes(root, "label")
	labels := make([]Label, 0, len(labelNodes))

	for _, ln := range labelNodes {
		label := Label{}
		label.Text, _ = sexp.GetQuotedString(ln, 1)
		if atNode, found := sexp.FindNode(ln, "at"); found {
			if pos, err := sexp.GetPosition(atNode); err == nil {
				label.Position = pos.Position
				label.Angle = pos.Angle
			}
		}
		if uuidNode, found := sexp.FindNode(ln, "uuid"); found {
			label.UUID, _ = sexp.GetUUID(uuidNode)
		}
		labels = append(labels, label)
	}

	return labels
}

// parseGlobalLabels parses global labels
func parseGlobalLabels(root kicadsexp.Sexp) []GlobalLabel {
	labelNodes := sexp.FindAllNodes(root, "global_label")
	labels := make([]GlobalLabel, 0, len(labelNodes))

	for _, ln := range labelNodes {
		label := GlobalLabel{}
		label.Text, _ = sexp.GetQuotedString(ln, 1)
		if shapeNode, found := sexp.FindNode(ln, "shape"); found {
			label.Shape, _ = sexp.GetString(shapeNode, 1)
		}
		if atNode, found := sexp.FindNode(ln, "at"); found {
			if pos, err := sexp.GetPosition(atNode); err == nil {
				label.Position = pos.Position
				label.Angle = pos.Angle
			}
		}
		if uuidNode, found := sexp.FindNode(ln, "uuid"); found {
			label.UUID, _ = sexp.GetUUID(uuidNode)
		}
		labels = append(labels, label)
	}

	return labels
}

// parseHierLabels parses hierarchical labels
func parseHierLabels(root kicadsexp.Sexp) []HierLabel {
	labelNodes := sexp.FindAllNodes(root, "hierarchical_label")
	labels := make([]HierLabel, 0, len(labelNodes))

	for _, ln := range labelNodes {
		label := HierLabel{}
		label.Text, _ = sexp.GetQuotedString(ln, 1)
		if shapeNode, found := sexp.FindNode(ln, "shape"); found {
			label.Shape, _ = sexp.GetString(shapeNode, 1)
		}
		if atNode, found := sexp.FindNode(ln, "at"); found {
			if pos, err := sexp.GetPosition(atNode); err == nil {
				label.Position = pos.Position
				label.Angle = pos.Angle
			}
		}
		if uuidNode, found := sexp.FindNode(ln, "uuid"); found {
			label.UUID, _ = sexp.GetUUID(uuidNode)
		}
		labels = append(labels, label)
	}

	return labels
}
