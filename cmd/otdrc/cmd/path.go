package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path <file> <from_ref> <to_ref>",
	Short: "Find the shortest electrical path between two components",
	Long: `Search the circuit graph for the shortest path between two
components, traversing shared nets. Net hops are shown bracketed:

  U1 -> [SPI_MOSI] -> U2`,
	Args: cobra.ExactArgs(3),
	RunE: runPath,
}

func init() {
	rootCmd.AddCommand(pathCmd)
}

func runPath(cmd *cobra.Command, args []string) error {
	graph, _, err := loadGraph(args[0])
	if err != nil {
		return err
	}

	fromRef, toRef := args[1], args[2]
	for _, ref := range []string{fromRef, toRef} {
		if _, ok := graph.Component(ref); !ok {
			return fmt.Errorf("component '%s' not found", ref)
		}
	}

	path, ok := graph.FindPath(fromRef, toRef)
	if !ok {
		fmt.Printf("No electrical path between %s and %s\n", fromRef, toRef)
		return nil
	}

	fmt.Println(strings.Join(path, " -> "))
	return nil
}
