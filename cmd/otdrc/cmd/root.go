package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "otdrc",
	Short: "OpenTraceDRC - Schematic connectivity and design-rule analysis",
	Long: `OpenTraceDRC (otdrc) reconstructs electrical connectivity from KiCad
schematic geometry and answers net-level questions about the design:
  - which pins belong to which nets
  - the electrical path between two components
  - inferred power-rail voltages
  - component proximity (e.g. decoupling caps near an IC)

Examples:
  otdrc nets board.kicad_sch          # List resolved nets
  otdrc path board.kicad_sch U1 U2    # Shortest electrical path
  otdrc power board.kicad_sch         # Inferred rail voltages
  otdrc near board.kicad_sch U1 20    # Components within 20mm of U1`,
	Version: "0.3.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
