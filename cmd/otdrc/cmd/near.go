package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var nearCapsOnly bool

var nearCmd = &cobra.Command{
	Use:   "near <file> <ref> <radius_mm>",
	Short: "List components near a given component",
	Long: `List components within the given radius (in millimeters) of the
named component. The query component itself is excluded. With --caps only
capacitors are listed, which is the usual decoupling-analysis query.`,
	Args: cobra.ExactArgs(3),
	RunE: runNear,
}

func init() {
	rootCmd.AddCommand(nearCmd)
	nearCmd.Flags().BoolVar(&nearCapsOnly, "caps", false, "only list capacitors")
}

func runNear(cmd *cobra.Command, args []string) error {
	graph, _, err := loadGraph(args[0])
	if err != nil {
		return err
	}

	ref := args[1]
	radius, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid radius '%s': %w", args[2], err)
	}

	target, ok := graph.Component(ref)
	if !ok {
		return fmt.Errorf("component '%s' not found", ref)
	}
	if target.Position == nil {
		fmt.Printf("%s has no placement; nothing to search\n", ref)
		return nil
	}

	comps := graph.ComponentsNear(ref, radius)
	if nearCapsOnly {
		comps = graph.CapacitorsNear(ref, radius)
	}

	fmt.Printf("%d component(s) within %.1fmm of %s:\n", len(comps), radius, ref)
	for _, c := range comps {
		dist := target.Position.DistanceTo(*c.Position)
		fmt.Printf("  %-8s %-20s %6.2fmm away\n", c.Reference, c.Value, dist)
	}

	return nil
}
