package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/OpenTraceLab/OpenTraceDRC/pkg/circuit"
	"github.com/OpenTraceLab/OpenTraceDRC/pkg/connectivity"
	"github.com/OpenTraceLab/OpenTraceDRC/pkg/kicad/schematic"
	"github.com/OpenTraceLab/OpenTraceDRC/pkg/netlist"
)

// loadGraph builds a circuit graph from either a KiCad schematic (via the
// geometric connectivity pipeline) or a SPICE-style netlist (connectivity is
// explicit, so the graph is populated directly). The connectivity result is
// nil for netlist input.
func loadGraph(filename string) (*circuit.Graph, *connectivity.Result, error) {
	// Engine warnings (malformed wires, unplaced components) only surface
	// with --verbose
	if verbose {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".kicad_sch":
		sch, err := schematic.ParseFile(filename)
		if err != nil {
			return nil, nil, fmt.Errorf("error parsing schematic: %w", err)
		}
		result := connectivity.Build(schematic.ToDesign(sch))
		return result.Graph, result, nil

	case ".net", ".cir", ".sp":
		parser, err := netlist.NewParser()
		if err != nil {
			return nil, nil, err
		}
		file, err := parser.ParseFile(filename)
		if err != nil {
			return nil, nil, fmt.Errorf("error parsing netlist: %w", err)
		}
		return netlist.BuildGraph(file), nil, nil

	default:
		return nil, nil, fmt.Errorf("unsupported file type: %s (expected .kicad_sch, .net, .cir, or .sp)", filename)
	}
}
