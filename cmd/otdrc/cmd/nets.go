package cmd

import (
	"fmt"
	"sort"

	"github.com/OpenTraceLab/OpenTraceDRC/pkg/circuit"
	"github.com/spf13/cobra"
)

var netsCmd = &cobra.Command{
	Use:   "nets <file> [net_name]",
	Short: "List resolved nets and their connected pins",
	Long: `Reconstruct connectivity and list the resolved nets.

Without a net argument: lists every net with its component count.
With a net argument: shows every component pin resolved onto that net.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runNets,
}

func init() {
	rootCmd.AddCommand(netsCmd)
}

func runNets(cmd *cobra.Command, args []string) error {
	graph, _, err := loadGraph(args[0])
	if err != nil {
		return err
	}

	if len(args) >= 2 {
		return showNetDetails(graph, args[1])
	}

	nets := graph.Nets()
	sort.Slice(nets, func(i, j int) bool { return nets[i].Name < nets[j].Name })

	fmt.Printf("%d nets\n\n", len(nets))
	fmt.Printf("%-30s %10s %8s\n", "Net Name", "Components", "Voltage")
	fmt.Println("──────────────────────────────────────────────────")
	for _, net := range nets {
		voltage := "-"
		if net.VoltageLevel != nil {
			voltage = fmt.Sprintf("%.1fV", *net.VoltageLevel)
		}
		fmt.Printf("%-30s %10d %8s\n", net.Name, len(graph.ComponentsOnNet(net.Name)), voltage)
	}

	return nil
}

func showNetDetails(graph *circuit.Graph, netName string) error {
	net, ok := graph.Net(netName)
	if !ok {
		return fmt.Errorf("net '%s' not found", netName)
	}

	fmt.Printf("Net: %s\n", net.Name)
	if net.VoltageLevel != nil {
		fmt.Printf("Inferred voltage: %.2fV (heuristic)\n", *net.VoltageLevel)
	}
	fmt.Println()

	comps := graph.ComponentsOnNet(netName)
	fmt.Printf("Connected components (%d):\n", len(comps))
	for _, comp := range comps {
		pin, _ := graph.ConnectionPin(comp.Reference, netName)
		desc := fmt.Sprintf("pin %s", pin.Number)
		if pin.Name != "" {
			desc += fmt.Sprintf(" (%s)", pin.Name)
		}
		if comp.Value != "" {
			fmt.Printf("  %-8s %-20s %s\n", comp.Reference, comp.Value, desc)
		} else {
			fmt.Printf("  %-8s %-20s %s\n", comp.Reference, "-", desc)
		}
	}

	return nil
}
