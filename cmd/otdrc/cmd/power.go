package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var powerCmd = &cobra.Command{
	Use:   "power <file>",
	Short: "Show inferred power-rail voltages",
	Long: `Infer DC voltage levels for nets by recognizing regulator part
numbers and power-symbol values, then show the resulting rails.

Inference is heuristic (name and part-number based); treat the values as
hints, not measurements.`,
	Args: cobra.ExactArgs(1),
	RunE: runPower,
}

func init() {
	rootCmd.AddCommand(powerCmd)
}

func runPower(cmd *cobra.Command, args []string) error {
	graph, _, err := loadGraph(args[0])
	if err != nil {
		return err
	}

	type rail struct {
		name    string
		voltage float64
		comps   int
	}
	var rails []rail
	for _, net := range graph.Nets() {
		if net.VoltageLevel == nil {
			continue
		}
		rails = append(rails, rail{
			name:    net.Name,
			voltage: *net.VoltageLevel,
			comps:   len(graph.ComponentsOnNet(net.Name)),
		})
	}

	if len(rails) == 0 {
		fmt.Println("No power rails identified")
		return nil
	}

	sort.Slice(rails, func(i, j int) bool { return rails[i].name < rails[j].name })

	fmt.Printf("Inferred power rails (heuristic):\n\n")
	fmt.Printf("%-30s %8s %11s\n", "Net Name", "Voltage", "Components")
	fmt.Println("───────────────────────────────────────────────────")
	for _, r := range rails {
		fmt.Printf("%-30s %7.2fV %11d\n", r.name, r.voltage, r.comps)
	}

	return nil
}
